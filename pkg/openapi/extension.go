// Package openapi collects color-field configuration from OpenAPI documents.
// Schema properties annotated with the x-colorfield extension contribute
// per-field layers to the settings hierarchy, so hosts that describe their
// models with OpenAPI schemas configure color fields in the same document.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-colorfield/pkg/config"
)

// ExtensionKey marks a schema property as a color field.
const ExtensionKey = "x-colorfield"

// LayersFromData parses an OpenAPI document and returns the settings layers
// declared through x-colorfield property extensions. Keys take the form
// "<app>.<SchemaName>.<propertyName>"; app names the owning application in
// the settings hierarchy.
func LayersFromData(ctx context.Context, raw []byte, app string, registries config.Registries) (config.Settings, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return LayersFromSpec(spec, app, registries)
}

// LayersFromSpec collects x-colorfield layers from an already-loaded
// document.
func LayersFromSpec(spec *openapi3.T, app string, registries config.Registries) (config.Settings, error) {
	if spec == nil {
		return nil, errors.New("openapi: spec is nil")
	}

	settings := config.Settings{}
	if spec.Components == nil {
		return settings, nil
	}

	for schemaName, schemaRef := range spec.Components.Schemas {
		if schemaRef == nil || schemaRef.Value == nil {
			continue
		}
		for propName, propRef := range schemaRef.Value.Properties {
			if propRef == nil || propRef.Value == nil {
				continue
			}
			raw, ok := extensionMap(propRef.Value.Extensions)
			if !ok {
				continue
			}
			layer, err := config.ParseLayer(raw, registries)
			if err != nil {
				return nil, fmt.Errorf("openapi: schema %s property %s: %w", schemaName, propName, err)
			}
			key := app + "." + schemaName + "." + propName
			if _, exists := settings[key]; exists {
				return nil, fmt.Errorf("openapi: duplicate color field %q", key)
			}
			settings[key] = layer
		}
	}
	return settings, nil
}

// extensionMap normalises the extension payload; depending on how the
// document was loaded the value arrives as a decoded map or raw JSON.
func extensionMap(extensions map[string]any) (map[string]any, bool) {
	value, ok := extensions[ExtensionKey]
	if !ok || value == nil {
		return nil, false
	}
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case json.RawMessage:
		var out map[string]any
		if err := json.Unmarshal(v, &out); err != nil {
			return nil, false
		}
		return out, true
	default:
		return nil, false
	}
}
