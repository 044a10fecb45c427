// Package config resolves the layered settings hierarchy that drives color
// choice fields. A field's configuration is assembled once from the baked-in
// defaults, the host's settings document, and the field's own construction
// arguments, in increasing precedence.
package config

import (
	"strings"

	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

// Option names recognized by a resolved configuration.
const (
	OptionDefaultColorChoices = "default_color_choices"
	OptionColorType           = "color_type"
	OptionChoiceModel         = "choice_model"
	OptionChoiceFilters       = "choice_filters"
	OptionOnlyCustomColors    = "only_use_custom_colors"
)

// DefaultKey addresses the global layer of a settings hierarchy.
const DefaultKey = "default"

// Layer is one overlay of configuration options. Zero-valued fields are
// unset and leave the accumulated value untouched during resolution.
type Layer struct {
	// Palette overrides the predefined color choices.
	Palette *palette.Palette
	// ColorType selects the stored attribute ("BACKGROUND" or "TEXT"). It
	// stays a string until resolution so settings documents can carry it
	// verbatim; parsing failures surface as resolution errors.
	ColorType string
	// Source supplies database-backed choices.
	Source store.LookupSource
	// Filters constrains the source query. Keys are filter field names.
	Filters map[string]any
	// OnlyCustomColors suppresses the palette choices entirely.
	OnlyCustomColors *bool
}

// IsZero reports whether the layer sets no options.
func (l Layer) IsZero() bool {
	return l.Palette == nil && l.ColorType == "" && l.Source == nil &&
		l.Filters == nil && l.OnlyCustomColors == nil
}

// merge overlays the layer's set options onto acc.
func (l Layer) merge(acc *accumulator) {
	if l.Palette != nil {
		acc.palette = *l.Palette
	}
	if l.ColorType != "" {
		acc.colorType = l.ColorType
	}
	if l.Source != nil {
		acc.source = l.Source
	}
	if l.Filters != nil {
		acc.filters = cloneFilters(l.Filters)
	}
	if l.OnlyCustomColors != nil {
		acc.onlyCustom = *l.OnlyCustomColors
	}
}

// Settings maps hierarchy keys to layers. The recognized keys are "default",
// "<app>", "<app>.<model>" and "<app>.<model>.<field>"; any subset may be
// present and a nil map behaves like an empty one.
type Settings map[string]Layer

// HierarchyKeys returns the lookup keys for one field in increasing
// specificity order. Empty name components cut the hierarchy short, so an
// unbound field resolves against the "default" layer only.
func HierarchyKeys(app, model, field string) []string {
	keys := []string{DefaultKey}
	app = strings.TrimSpace(app)
	model = strings.TrimSpace(model)
	field = strings.TrimSpace(field)
	if app == "" {
		return keys
	}
	keys = append(keys, app)
	if model == "" {
		return keys
	}
	keys = append(keys, app+"."+model)
	if field == "" {
		return keys
	}
	return append(keys, app+"."+model+"."+field)
}

func cloneFilters(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// Bool is a convenience for building layers with explicit boolean options.
func Bool(v bool) *bool {
	return &v
}
