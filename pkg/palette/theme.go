package palette

import (
	"errors"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	themeTokenPrefix     = "color."
	themeTokenBackground = ".background"
	themeTokenText       = ".text"
)

// FromTheme builds a palette from a go-theme selection. Manifest tokens of the
// form "color.<name>.background" and "color.<name>.text" become palette
// entries; variant tokens overlay the base manifest the same way variant
// assets do in the renderer pipeline. Colors are ordered by name so repeated
// selections produce the same palette.
func FromTheme(selection *theme.Selection) (Palette, error) {
	if selection == nil || selection.Manifest == nil {
		return Palette{}, errors.New("palette: theme selection has no manifest")
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	entries := make(map[string]*Color)
	for key, value := range tokens {
		if !strings.HasPrefix(key, themeTokenPrefix) {
			continue
		}
		rest := key[len(themeTokenPrefix):]
		var name string
		switch {
		case strings.HasSuffix(rest, themeTokenBackground):
			name = strings.TrimSuffix(rest, themeTokenBackground)
		case strings.HasSuffix(rest, themeTokenText):
			name = strings.TrimSuffix(rest, themeTokenText)
		default:
			continue
		}
		if name == "" {
			continue
		}
		entry, ok := entries[name]
		if !ok {
			entry = &Color{Name: titleize(name)}
			entries[name] = entry
		}
		if strings.HasSuffix(key, themeTokenBackground) {
			entry.Background = value
		} else {
			entry.Text = value
		}
	}

	if len(entries) == 0 {
		return Palette{}, errors.New("palette: theme manifest defines no color tokens")
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	paletteName := selection.Theme
	if selection.Variant != "" {
		paletteName += "/" + selection.Variant
	}
	out := Palette{Name: paletteName, Colors: make([]Color, 0, len(names))}
	for _, name := range names {
		out.Colors = append(out.Colors, *entries[name])
	}
	return out, nil
}

func titleize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
