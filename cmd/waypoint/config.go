package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after options and environment overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := waypoint.Init(baseOptions())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render(session.String()))
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(session.Config)
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
}
