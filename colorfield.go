// Package colorfield provides a pluggable color choice field: a select
// control whose choices combine predefined palettes with database-backed
// custom colors, configured per application, model, or field through a
// layered settings hierarchy.
package colorfield

import (
	"context"

	"github.com/goliatone/go-colorfield/pkg/choices"
	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/field"
	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

// Field re-exports the color field type for convenience.
type Field = field.Field

// Choice is one selectable (value, label) entry.
type Choice = choices.Choice

// Settings maps hierarchy keys to configuration layers.
type Settings = config.Settings

// Palette is a named, ordered list of predefined colors.
type Palette = palette.Palette

// LookupSource is an external store of user-defined colors.
type LookupSource = store.LookupSource

// Color type variants for WithColorType.
const (
	Background = palette.Background
	Text       = palette.Text
)

// New constructs a color field; see pkg/field for the available options.
func New(fns ...field.OptionFn) (*Field, error) {
	return field.New(fns...)
}

// Bootstrap returns the built-in Bootstrap 5 palette.
func Bootstrap() Palette {
	return palette.Bootstrap()
}

// RenderSelect builds a field, binds it against settings, and renders the
// select control in one call. It is the simplest entry point for hosts that
// just want markup.
func RenderSelect(ctx context.Context, settings Settings, app, model, name, selected string, fns ...field.OptionFn) (string, error) {
	f, err := field.New(fns...)
	if err != nil {
		return "", err
	}
	if err := f.Bind(settings, app, model, name); err != nil {
		return "", err
	}
	return f.Render(ctx, name, selected)
}
