// Package waypoint wires the navigation router of an onboarding app to its
// ambient stack: TOML configuration, structured logging and localized labels.
//
// The navigation model itself lives in the router subpackage.
package waypoint

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Options configures Init. Non-zero fields override the config file and the
// WAYPOINT_* environment variables.
type Options struct {
	ConfigFile    string                // Optional TOML file, see FileConfig
	LogPath       string                // Full path for the log file including filename (creates parent directories)
	LogLevel      string                // debug, info, warn or error
	Language      string                // BCP 47 tag for alert and screen labels
	ReplacePolicy *router.ReplacePolicy // What to do with completions of replaced presentations
	Tabs          []router.Tab          // Top-level destinations
	DefaultTab    router.Tab            // Tab selected at startup (defaults to the first of Tabs)
	OnPolicyError func(error)           // Receives rejected presentations under ReplaceReject
}

// Session is an initialized navigation tree with its resolved configuration.
type Session struct {
	Tree      *router.Tree
	Config    FileConfig
	Localizer *locale.Localizer
}

// Init resolves configuration, sets up logging and builds the router tree.
// The root selects the default tab.
func Init(options Options) (*Session, error) {
	var fileCfg FileConfig
	if options.ConfigFile != "" {
		loaded, err := LoadConfig(options.ConfigFile)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	cfg, err := fileCfg.merge(options, os.Getenv)
	if err != nil {
		return nil, err
	}

	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	if constants.IsDevMode() {
		internal.SetRouterLogLevel(slog.LevelDebug)
	}

	lang := cfg.Language
	if lang == "" {
		lang = constants.DefaultLanguage
	}
	localizer, err := locale.New(lang)
	if err != nil {
		return nil, NewConfigError("language", err)
	}

	tree := router.NewTree(router.Config{
		Logger:        internal.GetRouterLogger(),
		ReplacePolicy: cfg.ReplacePolicy,
		OnPolicyError: options.OnPolicyError,
	})

	if tab := defaultTab(cfg); tab != router.NoTab {
		tree.Root().SelectTab(tab)
	}

	internal.GetLogger().Info("navigation tree ready",
		"language", localizer.Language().String(),
		"replace_policy", cfg.ReplacePolicy.String(),
		"selected_tab", tree.Root().SelectedTab().String(),
	)

	return &Session{
		Tree:      tree,
		Config:    cfg,
		Localizer: localizer,
	}, nil
}

func defaultTab(cfg FileConfig) router.Tab {
	if cfg.DefaultTab != router.NoTab {
		return cfg.DefaultTab
	}
	if len(cfg.Tabs) > 0 {
		return cfg.Tabs[0]
	}
	return router.NoTab
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput replaces stdout as the console log sink.
// Call before Init() to take effect during initialization.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// String renders the session's resolved configuration for diagnostics.
func (s *Session) String() string {
	return fmt.Sprintf("waypoint session (language=%s policy=%s tab=%s nodes=%d)",
		s.Localizer.Language(), s.Config.ReplacePolicy, s.Tree.Root().SelectedTab(), s.Tree.Len())
}
