package openapi

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-colorfield/pkg/config"
)

// LayersFromFile loads an OpenAPI document from disk and collects its
// x-colorfield layers. Relative references inside the document resolve
// against the file's directory.
func LayersFromFile(ctx context.Context, path, app string, registries config.Registries) (config.Settings, error) {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return LayersFromSpec(spec, app, registries)
}

// LayersFromFS loads a document from an fs.FS, e.g. an embedded bundle.
func LayersFromFS(ctx context.Context, fsys fs.FS, name, app string, registries config.Registries) (config.Settings, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return LayersFromData(ctx, raw, app, registries)
}

// LayersFromURI fetches a document over HTTP and collects its layers.
func LayersFromURI(ctx context.Context, rawURL, app string, registries config.Registries) (config.Settings, error) {
	location, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("openapi: parse url %s: %w", rawURL, err)
	}
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromURI(location)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", rawURL, err)
	}
	return LayersFromSpec(spec, app, registries)
}
