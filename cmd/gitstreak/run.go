package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd(build func(*cobra.Command) *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Make today's commits and update the streak",
		Long: `Make a random number of commits (between min_commits and max_commits) to the
configured repository and push them. The streak and last run date are only
updated when every commit of the run was pushed.

A missing repository or another run holding the lock ends the run early
with exit status 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := build(cmd)
			defer func() { _ = app.Close() }()

			return app.RunOnce(cmd.Context())
		},
	}
}
