package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption is returned by Resolved.Get for option names outside
	// the recognized set.
	ErrUnknownOption = errors.New("config: unknown option")

	// ErrCustomColorsWithoutSource is returned when only_use_custom_colors
	// resolves to true but no lookup source or filters were supplied at any
	// hierarchy level.
	ErrCustomColorsWithoutSource = errors.New("config: cannot use custom colors without a lookup source or filters")
)

// ConfigError reports a resolution failure for one hierarchy reference. It
// wraps the underlying cause so callers can match sentinels with errors.Is.
type ConfigError struct {
	// Ref is the most specific hierarchy key of the failing field.
	Ref string
	// Err is the underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: resolve %s: %v", e.Ref, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
