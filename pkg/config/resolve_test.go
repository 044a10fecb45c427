package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

func testPalette(name string) palette.Palette {
	return palette.Palette{
		Name: name,
		Colors: []palette.Color{
			{Name: "Ink", Background: "bg-" + name, Text: "text-" + name},
		},
	}
}

func TestResolve_EmptySettingsYieldsDefaults(t *testing.T) {
	resolved, err := Resolve(nil, "blog", "Post", "highlight", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if diff := cmp.Diff(palette.Bootstrap(), resolved.Palette()); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if resolved.ColorType() != palette.Background {
		t.Fatalf("color type: got %s", resolved.ColorType())
	}
	if resolved.Source() != nil {
		t.Fatalf("expected no source")
	}
	if resolved.Filters() != nil {
		t.Fatalf("expected no filters")
	}
	if resolved.OnlyCustomColors() {
		t.Fatalf("expected only_use_custom_colors false")
	}
}

func TestResolve_HierarchyMonotonicOverride(t *testing.T) {
	appPalette := testPalette("app")
	modelPalette := testPalette("model")

	settings := Settings{
		"default":             {ColorType: "TEXT"},
		"blog":                {ColorType: "BACKGROUND", Palette: &appPalette},
		"blog.Post":           {Palette: &modelPalette},
		"blog.Post.highlight": {OnlyCustomColors: Bool(true), Filters: map[string]any{"name": "Ink"}},
	}

	resolved, err := Resolve(settings, "blog", "Post", "highlight", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// color_type from the app layer, palette from the model layer, flag from
	// the field layer.
	if resolved.ColorType() != palette.Background {
		t.Fatalf("color type: want BACKGROUND, got %s", resolved.ColorType())
	}
	if diff := cmp.Diff(modelPalette, resolved.Palette()); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if !resolved.OnlyCustomColors() {
		t.Fatalf("expected only_use_custom_colors true")
	}
}

func TestResolve_ExplicitLayerWins(t *testing.T) {
	explicitPalette := testPalette("explicit")
	settings := Settings{
		"default": {ColorType: "TEXT", Palette: ptr(testPalette("settings"))},
	}

	resolved, err := Resolve(settings, "blog", "Post", "highlight", Layer{
		ColorType: "BACKGROUND",
		Palette:   &explicitPalette,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if resolved.ColorType() != palette.Background {
		t.Fatalf("explicit color type lost: got %s", resolved.ColorType())
	}
	if diff := cmp.Diff(explicitPalette, resolved.Palette()); diff != "" {
		t.Fatalf("explicit palette lost (-want +got):\n%s", diff)
	}
}

func TestResolve_LessSpecificKeysIgnoredForOtherFields(t *testing.T) {
	settings := Settings{
		"blog.Post.highlight": {ColorType: "TEXT"},
	}

	resolved, err := Resolve(settings, "blog", "Post", "other", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ColorType() != palette.Background {
		t.Fatalf("layer for another field leaked: got %s", resolved.ColorType())
	}
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	layer := Layer{Filters: map[string]any{"name": "Ink"}}
	settings := Settings{"default": layer}

	first, err := Resolve(settings, "", "", "", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	filters := first.Filters()
	filters["name"] = "mutated"

	second, err := Resolve(settings, "", "", "", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if second.Filters()["name"] != "Ink" {
		t.Fatalf("resolution leaked mutable state across calls")
	}
	if settings["default"].Filters["name"] != "Ink" {
		t.Fatalf("resolution mutated the settings layer")
	}
}

func TestResolve_CustomColorsRequireSourceOrFilters(t *testing.T) {
	settings := Settings{
		"blog.Post.highlight": {OnlyCustomColors: Bool(true)},
	}

	_, err := Resolve(settings, "blog", "Post", "highlight", Layer{})
	if !errors.Is(err, ErrCustomColorsWithoutSource) {
		t.Fatalf("expected ErrCustomColorsWithoutSource, got %v", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Ref != "blog.Post.highlight" {
		t.Fatalf("error should name the failing field, got %q", cfgErr.Ref)
	}

	// A source at any level satisfies the invariant.
	settings["blog"] = Layer{Source: store.NewMemory()}
	if _, err := Resolve(settings, "blog", "Post", "highlight", Layer{}); err != nil {
		t.Fatalf("resolve with source: %v", err)
	}
}

func TestResolve_UnknownColorType(t *testing.T) {
	settings := Settings{"default": {ColorType: "BORDER"}}

	_, err := Resolve(settings, "", "", "", Layer{})
	if !errors.Is(err, palette.ErrUnknownColorType) {
		t.Fatalf("expected ErrUnknownColorType, got %v", err)
	}
}

func TestResolved_Get(t *testing.T) {
	source := store.NewMemory(store.Record{Name: "Ink"})
	resolved, err := Resolve(nil, "", "", "", Layer{
		ColorType: "TEXT",
		Source:    source,
		Filters:   map[string]any{"name": "Ink"},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	cases := []struct {
		option string
		check  func(t *testing.T, value any)
	}{
		{OptionDefaultColorChoices, func(t *testing.T, value any) {
			if diff := cmp.Diff(palette.Bootstrap(), value.(palette.Palette)); diff != "" {
				t.Fatalf("palette mismatch (-want +got):\n%s", diff)
			}
		}},
		{OptionColorType, func(t *testing.T, value any) {
			if value.(palette.ColorType) != palette.Text {
				t.Fatalf("color type: got %v", value)
			}
		}},
		{OptionChoiceModel, func(t *testing.T, value any) {
			if value.(store.LookupSource) != source {
				t.Fatalf("source mismatch")
			}
		}},
		{OptionChoiceFilters, func(t *testing.T, value any) {
			if diff := cmp.Diff(map[string]any{"name": "Ink"}, value); diff != "" {
				t.Fatalf("filters mismatch (-want +got):\n%s", diff)
			}
		}},
		{OptionOnlyCustomColors, func(t *testing.T, value any) {
			if value.(bool) {
				t.Fatalf("expected false")
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.option, func(t *testing.T) {
			value, err := resolved.Get(tc.option)
			if err != nil {
				t.Fatalf("get %s: %v", tc.option, err)
			}
			tc.check(t, value)
		})
	}
}

func TestResolved_GetUnknownOption(t *testing.T) {
	resolved, err := Resolve(nil, "", "", "", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := resolved.Get("invalid_key"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestResolved_GetAbsentSourceAndFilters(t *testing.T) {
	resolved, err := Resolve(nil, "", "", "", Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if value, err := resolved.Get(OptionChoiceModel); err != nil || value != nil {
		t.Fatalf("choice_model: want nil, got %v (%v)", value, err)
	}
	if value, err := resolved.Get(OptionChoiceFilters); err != nil || value != nil {
		t.Fatalf("choice_filters: want nil, got %v (%v)", value, err)
	}
}

func TestHierarchyKeys(t *testing.T) {
	cases := []struct {
		name   string
		app    string
		model  string
		field  string
		expect []string
	}{
		{"full triple", "blog", "Post", "highlight", []string{"default", "blog", "blog.Post", "blog.Post.highlight"}},
		{"no field", "blog", "Post", "", []string{"default", "blog", "blog.Post"}},
		{"app only", "blog", "", "", []string{"default", "blog"}},
		{"unbound", "", "", "", []string{"default"}},
		{"missing middle cuts hierarchy", "blog", "", "highlight", []string{"default", "blog"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HierarchyKeys(tc.app, tc.model, tc.field)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Fatalf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func ptr(p palette.Palette) *palette.Palette {
	return &p
}
