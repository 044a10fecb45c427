package field

import (
	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
	"github.com/goliatone/go-colorfield/pkg/widget"
)

// DefaultMaxLength bounds the stored CSS class string.
const DefaultMaxLength = 150

// Options carries the construction-time parameters of a field. They form the
// highest-precedence configuration layer during binding.
type Options struct {
	Source           store.LookupSource
	Filters          map[string]any
	ColorType        palette.ColorType
	Palette          *palette.Palette
	OnlyCustomColors *bool
	MaxLength        int

	TemplateName       string
	OptionTemplateName string
	Engine             widget.TemplateRenderer
}

// OptionFn mutates field options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the zero configuration every field starts from.
func DefaultOptions() Options {
	return Options{MaxLength: DefaultMaxLength}
}

// NewOptions folds option functions over the defaults and normalizes the
// result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.Filters != nil {
		copied := make(map[string]any, len(opts.Filters))
		for key, value := range opts.Filters {
			copied[key] = value
		}
		opts.Filters = copied
	}
	return opts
}

// WithSource supplies the lookup source for database-backed choices.
func WithSource(source store.LookupSource) OptionFn {
	return func(o *Options) {
		o.Source = source
	}
}

// WithFilters constrains the lookup-source query.
func WithFilters(filters map[string]any) OptionFn {
	return func(o *Options) {
		o.Filters = filters
	}
}

// WithColorType selects which CSS attribute becomes the stored value.
func WithColorType(colorType palette.ColorType) OptionFn {
	return func(o *Options) {
		o.ColorType = colorType
	}
}

// WithPalette overrides the predefined color choices.
func WithPalette(p palette.Palette) OptionFn {
	return func(o *Options) {
		o.Palette = &p
	}
}

// OnlyCustomColors suppresses palette choices; the field then requires a
// lookup source or filters at some configuration level.
func OnlyCustomColors() OptionFn {
	return func(o *Options) {
		o.OnlyCustomColors = config.Bool(true)
	}
}

// WithMaxLength overrides the stored string length bound.
func WithMaxLength(maxLength int) OptionFn {
	return func(o *Options) {
		o.MaxLength = maxLength
	}
}

// WithTemplates overrides the widget template identifiers.
func WithTemplates(templateName, optionTemplateName string) OptionFn {
	return func(o *Options) {
		o.TemplateName = templateName
		o.OptionTemplateName = optionTemplateName
	}
}

// WithEngine mounts a custom widget template engine.
func WithEngine(engine widget.TemplateRenderer) OptionFn {
	return func(o *Options) {
		o.Engine = engine
	}
}

// layer projects the explicit construction arguments onto a config layer.
// Only set options count.
func (o Options) layer() config.Layer {
	layer := config.Layer{
		Palette:          o.Palette,
		Source:           o.Source,
		Filters:          o.Filters,
		OnlyCustomColors: o.OnlyCustomColors,
	}
	if o.ColorType != "" {
		layer.ColorType = o.ColorType.String()
	}
	return layer
}
