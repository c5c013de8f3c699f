// Package constants defines shared constants and environment variable names
// used throughout waypoint.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by waypoint.Init.
const (
	LogLevelEnvVar      = "WAYPOINT_LOG_LEVEL"
	LogPathEnvVar       = "WAYPOINT_LOG_PATH"
	ReplacePolicyEnvVar = "WAYPOINT_REPLACE_POLICY"
	LanguageEnvVar      = "WAYPOINT_LANGUAGE"
)

// DefaultLanguage is used when neither options nor config name a language.
const DefaultLanguage = "en"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Development mode turns on router debug logging.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}
