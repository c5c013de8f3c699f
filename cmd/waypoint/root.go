package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// cfgFile allows specifying a TOML config file
	cfgFile string
	// logLevel overrides the configured log level
	logLevel string
	// language overrides the configured label language
	language string

	rootCmd = &cobra.Command{
		Use:   "waypoint",
		Short: "Replay navigation scripts against a router tree",
		Long: TitleStyle.Render("waypoint") + SubtitleStyle.Render(" - hierarchical navigation router") + `

waypoint builds a navigation tree from its TOML configuration and applies
scripted steps (push, present, dismiss, pop, tab switches, deep links) to it,
rendering the tree after each step.

` + SubtitleStyle.Render("Examples:") + `
  waypoint replay onboarding.toml
  waypoint replay --policy resolve --lang ar onboarding.toml
  waypoint config show --config waypoint.toml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "BCP 47 language for labels")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command and exits non-zero on failure.
// Logs go to stderr so stdout carries only command output.
func Execute() {
	waypoint.SetLogOutput(os.Stderr)
	defer waypoint.Close()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func baseOptions() waypoint.Options {
	return waypoint.Options{
		ConfigFile: cfgFile,
		LogLevel:   logLevel,
		Language:   language,
	}
}
