// Package field implements the color choice field: a plain object that
// resolves its configuration once against the settings hierarchy and
// assembles its choice list on every render. Host frameworks wrap it behind
// their own model/form field surfaces.
package field

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-colorfield/pkg/choices"
	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/widget"
)

// ErrAlreadyBound is returned when Bind is called on a bound field.
var ErrAlreadyBound = errors.New("field: field is already bound")

// Field is one color choice field instance. Construct with New, optionally
// Bind to an owning (app, model, field) triple, then read choices per render.
// A field resolves its configuration at most once.
type Field struct {
	opts Options

	bindOnce sync.Once
	resolved *config.Resolved
	bindErr  error

	widgetOnce sync.Once
	widget     *widget.Widget
	widgetErr  error
}

// New constructs a field from the supplied options. Requesting custom colors
// only without a lookup source or filters fails immediately: the settings
// hierarchy could still supply one, but explicit construction arguments are
// the highest-precedence layer and would keep the invariant broken.
func New(fns ...OptionFn) (*Field, error) {
	opts := NewOptions(fns...)
	if opts.OnlyCustomColors != nil && *opts.OnlyCustomColors &&
		opts.Source == nil && len(opts.Filters) == 0 {
		return nil, fmt.Errorf("field: %w", config.ErrCustomColorsWithoutSource)
	}
	return &Field{opts: opts}, nil
}

// Options returns a copy of the field's construction options.
func (f *Field) Options() Options {
	if f == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = f.opts })
}

// MaxLength returns the stored string length bound.
func (f *Field) MaxLength() int {
	if f == nil {
		return DefaultMaxLength
	}
	return f.opts.MaxLength
}

// Bind resolves the field's configuration against the settings hierarchy for
// its owning (app, model, field) triple. It must be called at most once;
// fields used without Bind resolve lazily against pure defaults.
func (f *Field) Bind(settings config.Settings, app, model, name string) error {
	bound := false
	f.bindOnce.Do(func() {
		f.resolved, f.bindErr = config.Resolve(settings, app, model, name, f.opts.layer())
		bound = true
	})
	if !bound {
		return ErrAlreadyBound
	}
	return f.bindErr
}

// Config returns the resolved configuration, binding against pure defaults
// when the field was never bound explicitly.
func (f *Field) Config() (*config.Resolved, error) {
	f.bindOnce.Do(func() {
		f.resolved, f.bindErr = config.Resolve(nil, "", "", "", f.opts.layer())
	})
	return f.resolved, f.bindErr
}

// Choices assembles the current choice list. The list is recomputed on every
// call since the lookup source may have changed between renders.
func (f *Field) Choices(ctx context.Context, opts ...choices.Option) ([]choices.Choice, error) {
	resolved, err := f.Config()
	if err != nil {
		return nil, err
	}
	return choices.New(resolved).Assemble(ctx, opts...), nil
}

// Widget returns the select widget configured for this field. The widget is
// built once and reused across renders.
func (f *Field) Widget() (*widget.Widget, error) {
	f.widgetOnce.Do(func() {
		var options []widget.Option
		if f.opts.TemplateName != "" || f.opts.OptionTemplateName != "" {
			options = append(options, widget.WithTemplates(f.opts.TemplateName, f.opts.OptionTemplateName))
		}
		if f.opts.Engine != nil {
			options = append(options, widget.WithEngine(f.opts.Engine))
		}
		f.widget, f.widgetErr = widget.New(options...)
	})
	return f.widget, f.widgetErr
}

// Render assembles the current choices and renders the select control in one
// step, the common path for host form pipelines.
func (f *Field) Render(ctx context.Context, name, selected string, opts ...choices.Option) (string, error) {
	list, err := f.Choices(ctx, opts...)
	if err != nil {
		return "", err
	}
	w, err := f.Widget()
	if err != nil {
		return "", err
	}
	return w.Render(widget.RenderData{
		Name:     name,
		Selected: selected,
		Attrs:    map[string]string{"maxlength": fmt.Sprint(f.MaxLength())},
		Choices:  list,
	})
}

// FormField is the data a host form pipeline needs to mount the field: the
// control name, the length bound, the widget, and a per-render choices
// callback.
type FormField struct {
	Name      string
	MaxLength int
	Widget    *widget.Widget
	Choices   func(ctx context.Context) []choices.Choice
}

// FormField builds the form surface for this field under the given control
// name. The choices callback swallows nothing new: assembly already degrades
// on lookup failures, so it never errors mid-render.
func (f *Field) FormField(name string) (FormField, error) {
	resolved, err := f.Config()
	if err != nil {
		return FormField{}, err
	}
	w, err := f.Widget()
	if err != nil {
		return FormField{}, err
	}
	assembler := choices.New(resolved)
	return FormField{
		Name:      name,
		MaxLength: f.MaxLength(),
		Widget:    w,
		Choices: func(ctx context.Context) []choices.Choice {
			return assembler.Assemble(ctx)
		},
	}, nil
}
