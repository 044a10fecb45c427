package openapi

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
)

const annotatedDocument = `
openapi: 3.0.3
info:
  title: Blog API
  version: 1.0.0
paths: {}
components:
  schemas:
    Post:
      type: object
      properties:
        title:
          type: string
        highlight:
          type: string
          x-colorfield:
            color_type: TEXT
            choice_model: labels
            choice_filters:
              name: Red
`

func testRegistries() config.Registries {
	sources := store.NewRegistry()
	sources.Register("labels", store.NewMemory(
		store.Record{Name: "Red", Background: "bg-red", Text: "text-red"},
	))
	return config.Registries{
		Palettes: palette.NewRegistry(),
		Sources:  sources,
	}
}

func TestLayersFromData(t *testing.T) {
	settings, err := LayersFromData(context.Background(), []byte(annotatedDocument), "blog", testRegistries())
	if err != nil {
		t.Fatalf("layers from data: %v", err)
	}

	layer, ok := settings["blog.Post.highlight"]
	if !ok {
		t.Fatalf("missing layer for annotated property, got keys %v", settingsKeys(settings))
	}
	if layer.ColorType != "TEXT" {
		t.Fatalf("want color type TEXT, got %q", layer.ColorType)
	}
	if layer.Source == nil {
		t.Fatalf("want registered lookup source on layer")
	}
	if layer.Filters["name"] != "Red" {
		t.Fatalf("want filters carried over, got %v", layer.Filters)
	}

	if _, ok := settings["blog.Post.title"]; ok {
		t.Fatalf("unannotated property must not contribute a layer")
	}
}

func TestLayersFromData_FeedsResolve(t *testing.T) {
	settings, err := LayersFromData(context.Background(), []byte(annotatedDocument), "blog", testRegistries())
	if err != nil {
		t.Fatalf("layers from data: %v", err)
	}

	resolved, err := config.Resolve(settings, "blog", "Post", "highlight", config.Layer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ColorType() != palette.Text {
		t.Fatalf("want TEXT after resolution, got %q", resolved.ColorType())
	}
	if resolved.Source() == nil {
		t.Fatalf("want lookup source after resolution")
	}
}

func TestLayersFromData_EmptyPayload(t *testing.T) {
	if _, err := LayersFromData(context.Background(), nil, "blog", testRegistries()); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestLayersFromData_UnknownOption(t *testing.T) {
	doc := strings.Replace(annotatedDocument, "color_type: TEXT", "colour_type: TEXT", 1)

	_, err := LayersFromData(context.Background(), []byte(doc), "blog", testRegistries())
	if err == nil {
		t.Fatalf("expected error for unknown option key")
	}
	if !strings.Contains(err.Error(), "highlight") {
		t.Fatalf("error should name the offending property, got %v", err)
	}
}

func TestLayersFromData_UnregisteredSource(t *testing.T) {
	registries := config.Registries{
		Palettes: palette.NewRegistry(),
		Sources:  store.NewRegistry(),
	}
	_, err := LayersFromData(context.Background(), []byte(annotatedDocument), "blog", registries)
	if err == nil {
		t.Fatalf("expected error for unregistered source name")
	}
	if !strings.Contains(err.Error(), "labels") {
		t.Fatalf("error should name the missing source, got %v", err)
	}
}

func TestLayersFromSpec_NilSpec(t *testing.T) {
	if _, err := LayersFromSpec(nil, "blog", testRegistries()); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}

func TestLayersFromData_NoAnnotations(t *testing.T) {
	doc := `
openapi: 3.0.3
info:
  title: Plain API
  version: 1.0.0
paths: {}
components:
  schemas:
    Post:
      type: object
      properties:
        title:
          type: string
`
	settings, err := LayersFromData(context.Background(), []byte(doc), "blog", testRegistries())
	if err != nil {
		t.Fatalf("layers from data: %v", err)
	}
	if len(settings) != 0 {
		t.Fatalf("want no layers, got %v", settingsKeys(settings))
	}
}

func TestLayersFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"api/blog.yaml": &fstest.MapFile{Data: []byte(annotatedDocument)},
	}

	settings, err := LayersFromFS(context.Background(), fsys, "api/blog.yaml", "blog", testRegistries())
	if err != nil {
		t.Fatalf("layers from fs: %v", err)
	}
	if _, ok := settings["blog.Post.highlight"]; !ok {
		t.Fatalf("missing layer for annotated property, got keys %v", settingsKeys(settings))
	}
}

func TestLayersFromFS_MissingFile(t *testing.T) {
	_, err := LayersFromFS(context.Background(), fstest.MapFS{}, "missing.yaml", "blog", testRegistries())
	if err == nil {
		t.Fatalf("expected error for missing document")
	}
}

func settingsKeys(settings config.Settings) []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	return keys
}
