package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FromViper reads a settings hierarchy from the given key of a viper
// instance, so hosts that already manage configuration through viper can
// mount color settings next to the rest of their config:
//
//	colorfield:
//	  default:
//	    color_type: TEXT
//	  blog:
//	    post:
//	      highlight:
//	        only_use_custom_colors: true
//	        choice_model: team-colors
//
// Viper folds keys to lower case, so hierarchy keys sourced this way are
// lower-cased; apps should bind fields with matching names. A missing key
// yields empty Settings.
func FromViper(v *viper.Viper, key string, registries Registries) (Settings, error) {
	if v == nil {
		return Settings{}, nil
	}
	raw := v.Get(key)
	if raw == nil {
		return Settings{}, nil
	}
	doc, ok := coerceMap(raw)
	if !ok {
		return nil, fmt.Errorf("config: viper key %q wants a mapping, got %T", key, raw)
	}
	return settingsFromRaw(doc, registries)
}
