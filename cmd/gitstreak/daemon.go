package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shreyass0007/gitstreak/internal/schedule"
)

func newDaemonCmd(build func(*cobra.Command) *App) *cobra.Command {
	var (
		sched  string
		runNow bool
	)

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run on a cron schedule until interrupted",
		Long: `Stay in the foreground and perform a run on every activation of a cron
schedule. A run still in progress when the next activation arrives causes
that activation to be skipped. Stop with Ctrl-C or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := build(cmd)
			defer func() { _ = app.Close() }()

			return app.Daemon(cmd.Context(), sched, runNow)
		},
	}

	cmd.Flags().StringVar(&sched, "schedule", schedule.DefaultSchedule, "cron schedule (5 fields or a descriptor such as @daily)")
	cmd.Flags().BoolVar(&runNow, "run-now", false, "perform a run immediately before waiting for the schedule")
	return cmd
}

// Daemon performs a guarded run on every activation of sched until ctx is done
func (a *App) Daemon(ctx context.Context, sched string, runNow bool) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	d, err := schedule.NewDaemon(sched, a.RunOnce, a.Logger, schedule.WithRunNow(runNow))
	if err != nil {
		return err
	}

	return d.Run(ctx)
}
