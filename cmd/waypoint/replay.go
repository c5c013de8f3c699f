package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/internal/replay"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/render"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

var (
	policy string
	quiet  bool

	replayCmd = &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Apply a navigation script and print the tree after each step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := baseOptions()
			if policy != "" {
				p, err := router.ParseReplacePolicy(policy)
				if err != nil {
					return err
				}
				options.ReplacePolicy = &p
			}
			options.OnPolicyError = func(err error) {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("rejected: ")+err.Error())
			}

			session, err := waypoint.Init(options)
			if err != nil {
				return err
			}
			script, err := replay.LoadScript(args[0])
			if err != nil {
				return err
			}
			return runScript(cmd.OutOrStdout(), session, script, quiet)
		},
	}
)

func init() {
	replayCmd.Flags().StringVar(&policy, "policy", "", "replace policy for occupied slots (drop, reject, resolve)")
	replayCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the final tree")
}

func runScript(w io.Writer, session *waypoint.Session, script replay.Script, quiet bool) error {
	engine := replay.NewEngine(session.Tree)
	text := render.NewText(session.Localizer)

	err := engine.Run(script, func(i int, step replay.Step, fired []replay.Fired) error {
		if quiet {
			return nil
		}
		fmt.Fprintln(w, StepStyle.Render(fmt.Sprintf("step %d: %s %s", i+1, step.Op, nodeName(step.Node))))
		for _, f := range fired {
			fmt.Fprintln(w, FiredStyle.Render(fmt.Sprintf("  completion %s fired with %v", f.Name, f.Result)))
		}
		out, err := text.Tree(session.Tree)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	})
	if err != nil {
		return err
	}

	if quiet {
		out, err := text.Tree(session.Tree)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
	}
	return nil
}

func nodeName(alias string) string {
	if alias == "" {
		return replay.RootAlias
	}
	return alias
}
