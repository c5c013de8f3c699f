package waypoint

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// FileConfig is the TOML configuration file.
//
//	log_level = "debug"
//	log_path = "logs/waypoint.log"
//	language = "en"
//	replace_policy = "drop"
//	tabs = ["home", "profile"]
//	default_tab = "home"
type FileConfig struct {
	LogLevel      string               `toml:"log_level"`
	LogPath       string               `toml:"log_path"`
	Language      string               `toml:"language"`
	ReplacePolicy router.ReplacePolicy `toml:"replace_policy"`
	Tabs          []router.Tab         `toml:"tabs"`
	DefaultTab    router.Tab           `toml:"default_tab"`
}

// LoadConfig decodes and validates the TOML file at path.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig decodes and validates TOML text.
func ParseConfig(data string) (FileConfig, error) {
	var cfg FileConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values the decoder cannot.
func (c FileConfig) Validate() error {
	if c.LogLevel != "" {
		if _, err := internal.ParseLevel(c.LogLevel); err != nil {
			return NewConfigError("log_level", err)
		}
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return NewConfigError("language", err)
		}
	}
	if c.DefaultTab != router.NoTab && len(c.Tabs) > 0 && !slices.Contains(c.Tabs, c.DefaultTab) {
		return NewConfigError("default_tab", fmt.Errorf("%w: %q", ErrUnknownTab, c.DefaultTab))
	}
	return nil
}

// merge overlays non-zero options and environment variables on c.
// Precedence: options, then environment, then file.
func (c FileConfig) merge(options Options, getenv func(string) string) (FileConfig, error) {
	if v := getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := getenv(constants.LogPathEnvVar); v != "" {
		c.LogPath = v
	}
	if v := getenv(constants.LanguageEnvVar); v != "" {
		c.Language = v
	}
	if v := getenv(constants.ReplacePolicyEnvVar); v != "" {
		policy, err := router.ParseReplacePolicy(v)
		if err != nil {
			return c, NewConfigError("replace_policy", err)
		}
		c.ReplacePolicy = policy
	}

	if options.LogLevel != "" {
		c.LogLevel = options.LogLevel
	}
	if options.LogPath != "" {
		c.LogPath = options.LogPath
	}
	if options.Language != "" {
		c.Language = options.Language
	}
	if options.ReplacePolicy != nil {
		c.ReplacePolicy = *options.ReplacePolicy
	}
	if len(options.Tabs) > 0 {
		c.Tabs = options.Tabs
	}
	if options.DefaultTab != router.NoTab {
		c.DefaultTab = options.DefaultTab
	}
	return c, c.Validate()
}
