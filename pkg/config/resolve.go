package config

import (
	"fmt"

	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

type accumulator struct {
	palette    palette.Palette
	colorType  string
	source     store.LookupSource
	filters    map[string]any
	onlyCustom bool
}

func defaults() accumulator {
	return accumulator{
		palette:   palette.Bootstrap(),
		colorType: palette.Background.String(),
	}
}

// Resolve flattens the settings hierarchy for one (app, model, field) triple.
// Layers apply in increasing specificity (defaults, "default", app,
// app.model, app.model.field) and the explicit layer from field construction
// wins over everything. Inputs are read-only; repeated calls with the same
// arguments produce equal results.
func Resolve(settings Settings, app, model, field string, explicit Layer) (*Resolved, error) {
	acc := defaults()

	for _, key := range HierarchyKeys(app, model, field) {
		if layer, ok := settings[key]; ok {
			layer.merge(&acc)
		}
	}
	explicit.merge(&acc)

	colorType, err := palette.ParseColorType(acc.colorType)
	if err != nil {
		return nil, &ConfigError{Ref: joinRef(app, model, field), Err: err}
	}

	if acc.onlyCustom && acc.source == nil && len(acc.filters) == 0 {
		return nil, &ConfigError{Ref: joinRef(app, model, field), Err: ErrCustomColorsWithoutSource}
	}

	return &Resolved{
		palette:    acc.palette,
		colorType:  colorType,
		source:     acc.source,
		filters:    acc.filters,
		onlyCustom: acc.onlyCustom,
	}, nil
}

func joinRef(app, model, field string) string {
	key := HierarchyKeys(app, model, field)
	return key[len(key)-1]
}

// Resolved is the flattened configuration for one field instance. It is
// immutable after construction and safe for concurrent readers.
type Resolved struct {
	palette    palette.Palette
	colorType  palette.ColorType
	source     store.LookupSource
	filters    map[string]any
	onlyCustom bool
}

// Palette returns the predefined color choices.
func (r *Resolved) Palette() palette.Palette {
	return r.palette
}

// ColorType returns the attribute stored as the choice value.
func (r *Resolved) ColorType() palette.ColorType {
	return r.colorType
}

// Source returns the lookup source, or nil when none resolved.
func (r *Resolved) Source() store.LookupSource {
	return r.source
}

// Filters returns a copy of the source filter criteria; nil when unset.
func (r *Resolved) Filters() map[string]any {
	return cloneFilters(r.filters)
}

// OnlyCustomColors reports whether palette choices are suppressed.
func (r *Resolved) OnlyCustomColors() bool {
	return r.onlyCustom
}

// Get returns the value of a recognized option by its settings name. Unknown
// option names fail with ErrUnknownOption.
func (r *Resolved) Get(option string) (any, error) {
	switch option {
	case OptionDefaultColorChoices:
		return r.palette, nil
	case OptionColorType:
		return r.colorType, nil
	case OptionChoiceModel:
		if r.source == nil {
			return nil, nil
		}
		return r.source, nil
	case OptionChoiceFilters:
		if r.filters == nil {
			return nil, nil
		}
		return cloneFilters(r.filters), nil
	case OptionOnlyCustomColors:
		return r.onlyCustom, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
}
