package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses YAML/JSON settings
// documents into a single Settings map. The document root maps hierarchy
// keys (dotted or nested) to option layers:
//
//	default:
//	  color_type: TEXT
//	blog.Post.highlight:
//	  only_use_custom_colors: true
//	  choice_model: team-colors
//
// A nil filesystem or one without settings files yields empty Settings.
// Hierarchy keys defined in more than one file are an error.
func LoadFS(fsys fs.FS, registries Registries) (Settings, error) {
	settings := Settings{}
	if fsys == nil {
		return settings, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSettingsFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}

		parsed, err := ParseSettings(data, registries)
		if err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}

		for key, layer := range parsed {
			if _, exists := settings[key]; exists {
				return fmt.Errorf("config: duplicate hierarchy key %q (file %s)", key, path)
			}
			settings[key] = layer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// ParseSettings decodes one settings document. YAML and JSON payloads are
// both accepted.
func ParseSettings(data []byte, registries Registries) (Settings, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Settings{}, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: invalid settings document: %w", err)
	}

	return settingsFromRaw(doc, registries)
}

func settingsFromRaw(doc map[string]any, registries Registries) (Settings, error) {
	flat := make(map[string]map[string]any)
	if err := flattenSettings("", doc, flat); err != nil {
		return nil, err
	}

	settings := make(Settings, len(flat))
	for key, raw := range flat {
		layer, err := ParseLayer(raw, registries)
		if err != nil {
			return nil, fmt.Errorf("config: layer %q: %w", key, err)
		}
		settings[key] = layer
	}
	return settings, nil
}

func isSettingsFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
