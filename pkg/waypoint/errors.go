package waypoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrConfigNotFound indicates the configured TOML file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownTab indicates default_tab is not listed in tabs.
	ErrUnknownTab = errors.New("default tab not in tab list")
)

// ConfigError reports an invalid configuration value. Field names the TOML
// key, Err the underlying cause.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("waypoint: config %s", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
