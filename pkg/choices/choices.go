// Package choices assembles the ordered (value, label) list a color select
// widget presents, combining palette entries with records from an optional
// lookup source.
package choices

import (
	"context"

	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/store"
)

// Choice is one selectable entry. Background and Text carry the CSS class
// variants through to option templates regardless of which one became the
// value.
type Choice struct {
	Value      string
	Label      string
	Background string
	Text       string
}

// Option adjusts a single assembly pass.
type Option func(*options)

type options struct {
	sourcePriority bool
}

// WithSourcePriority places lookup-source choices before palette choices.
func WithSourcePriority() Option {
	return func(o *options) {
		o.sourcePriority = true
	}
}

// Assembler computes choice lists for one resolved configuration.
type Assembler struct {
	cfg *config.Resolved
}

// New constructs an assembler bound to the resolved configuration.
func New(cfg *config.Resolved) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble computes the current choice list. Palette choices come first
// unless suppressed by only_use_custom_colors or reordered by
// WithSourcePriority. The result is recomputed on every call, since the
// lookup source may have changed between renders, and duplicates are
// preserved.
//
// A failing lookup source degrades to "no source choices" instead of
// propagating; sources are commonly unready while a host runs schema
// migrations. That swallow happens here and nowhere else, lookupChoices
// itself reports the failure.
func (a *Assembler) Assemble(ctx context.Context, opts ...Option) []Choice {
	if a == nil || a.cfg == nil {
		return nil
	}
	var settings options
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	var base []Choice
	if !a.cfg.OnlyCustomColors() {
		base = a.paletteChoices()
	}

	fromSource, err := a.lookupChoices(ctx)
	if err != nil {
		fromSource = nil
	}

	if settings.sourcePriority {
		return append(fromSource, base...)
	}
	return append(base, fromSource...)
}

func (a *Assembler) paletteChoices() []Choice {
	colorType := a.cfg.ColorType()
	colors := a.cfg.Palette().Colors
	out := make([]Choice, 0, len(colors))
	for _, color := range colors {
		out = append(out, Choice{
			Value:      color.Value(colorType),
			Label:      color.Name,
			Background: color.Background,
			Text:       color.Text,
		})
	}
	return out
}

func (a *Assembler) lookupChoices(ctx context.Context) ([]Choice, error) {
	source := a.cfg.Source()
	if source == nil {
		return nil, nil
	}

	var (
		records []store.Record
		err     error
	)
	if filters := a.cfg.Filters(); len(filters) > 0 {
		records, err = source.Filtered(ctx, filters)
	} else {
		records, err = source.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	colorType := a.cfg.ColorType()
	out := make([]Choice, 0, len(records))
	for _, record := range records {
		out = append(out, Choice{
			Value:      record.Value(colorType),
			Label:      record.Name,
			Background: record.Background,
			Text:       record.Text,
		})
	}
	return out, nil
}
