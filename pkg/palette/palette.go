package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ColorType selects which CSS attribute of a color becomes the stored value.
type ColorType string

const (
	// Background stores the background CSS class of a color.
	Background ColorType = "BACKGROUND"
	// Text stores the text CSS class of a color.
	Text ColorType = "TEXT"
)

// ErrUnknownColorType is returned when a string does not name a ColorType.
var ErrUnknownColorType = errors.New("palette: unknown color type")

// ParseColorType maps a configuration string onto the closed ColorType set.
// Matching is case-insensitive; anything outside the set is an error rather
// than a passthrough.
func ParseColorType(raw string) (ColorType, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(Background):
		return Background, nil
	case string(Text):
		return Text, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColorType, raw)
	}
}

// String returns the canonical configuration spelling.
func (t ColorType) String() string {
	return string(t)
}

// Color is a single palette entry. Background and Text hold the CSS class
// variants a host stylesheet defines for the color.
type Color struct {
	Name       string
	Background string
	Text       string
}

// Value returns the attribute selected by the color type. Unknown types fall
// back to the background variant so a zero ColorType stays usable.
func (c Color) Value(colorType ColorType) string {
	if colorType == Text {
		return c.Text
	}
	return c.Background
}

// Palette is a named, ordered list of predefined colors. Palettes are defined
// once at startup and treated as immutable; callers must not mutate Colors
// after sharing a palette.
type Palette struct {
	Name   string
	Colors []Color
}

// IsZero reports whether the palette carries no definition at all.
func (p Palette) IsZero() bool {
	return p.Name == "" && len(p.Colors) == 0
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.Colors)
}
