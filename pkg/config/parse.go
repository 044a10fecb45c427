package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

// Registries supplies the named palettes and lookup sources a settings
// document may reference. Either registry may be nil when the corresponding
// option never appears.
type Registries struct {
	Palettes *palette.Registry
	Sources  *store.Registry
}

// ParseLayer decodes one raw settings layer. Palettes and lookup sources are
// referenced by registered name; unknown names and unrecognized option keys
// are errors so typos surface at load time instead of render time.
func ParseLayer(raw map[string]any, registries Registries) (Layer, error) {
	var layer Layer
	for _, key := range sortedKeys(raw) {
		value := raw[key]
		switch key {
		case OptionDefaultColorChoices:
			name, ok := value.(string)
			if !ok {
				return Layer{}, fmt.Errorf("config: option %q wants a palette name, got %T", key, value)
			}
			resolved, ok := registries.Palettes.Lookup(name)
			if !ok {
				return Layer{}, fmt.Errorf("config: palette %q is not registered", name)
			}
			layer.Palette = &resolved
		case OptionColorType:
			name, ok := value.(string)
			if !ok {
				return Layer{}, fmt.Errorf("config: option %q wants a string, got %T", key, value)
			}
			layer.ColorType = name
		case OptionChoiceModel:
			name, ok := value.(string)
			if !ok {
				return Layer{}, fmt.Errorf("config: option %q wants a source name, got %T", key, value)
			}
			source, ok := registries.Sources.Lookup(name)
			if !ok {
				return Layer{}, fmt.Errorf("config: lookup source %q is not registered", name)
			}
			layer.Source = source
		case OptionChoiceFilters:
			filters, err := coerceFilters(value)
			if err != nil {
				return Layer{}, fmt.Errorf("config: option %q: %w", key, err)
			}
			layer.Filters = filters
		case OptionOnlyCustomColors:
			flag, ok := value.(bool)
			if !ok {
				return Layer{}, fmt.Errorf("config: option %q wants a boolean, got %T", key, value)
			}
			layer.OnlyCustomColors = Bool(flag)
		default:
			return Layer{}, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	return layer, nil
}

func coerceFilters(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return cloneFilters(v), nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("filter key %v is not a string", key)
			}
			out[name] = entry
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wants a mapping, got %T", value)
	}
}

// flattenSettings collapses a raw settings tree into dotted hierarchy keys.
// A node that carries any recognized option name is treated as a layer, and
// so is any node below the root that holds non-mapping values: such a node
// cannot be a hierarchy level, so handing it to ParseLayer lets unrecognized
// option keys fail with ErrUnknownOption at any depth. Everything else is
// descended with the key joined by dots, so both the literal form
// ("app.Model.field") and the nested form are accepted.
func flattenSettings(prefix string, node map[string]any, out map[string]map[string]any) error {
	if isLayerNode(node) || (prefix != "" && hasScalarChild(node)) {
		if prefix == "" {
			return fmt.Errorf("config: settings document sets options outside any hierarchy key")
		}
		if _, exists := out[prefix]; exists {
			return fmt.Errorf("config: duplicate hierarchy key %q", prefix)
		}
		out[prefix] = node
		return nil
	}

	for _, key := range sortedKeys(node) {
		child, ok := coerceMap(node[key])
		if !ok {
			return fmt.Errorf("config: hierarchy key %q wants a mapping, got %T", joinKey(prefix, key), node[key])
		}
		if err := flattenSettings(joinKey(prefix, key), child, out); err != nil {
			return err
		}
	}
	return nil
}

func hasScalarChild(node map[string]any) bool {
	for _, value := range node {
		if _, ok := coerceMap(value); !ok {
			return true
		}
	}
	return false
}

func isLayerNode(node map[string]any) bool {
	for key := range node {
		switch key {
		case OptionDefaultColorChoices, OptionColorType, OptionChoiceModel,
			OptionChoiceFilters, OptionOnlyCustomColors:
			return true
		}
	}
	return false
}

func coerceMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[name] = entry
		}
		return out, true
	default:
		return nil, false
	}
}

func joinKey(prefix, key string) string {
	key = strings.TrimSpace(key)
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func sortedKeys(in map[string]any) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
