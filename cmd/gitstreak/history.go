package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shreyass0007/gitstreak/internal/history"
)

func newHistoryCmd(build func(*cobra.Command) *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := build(cmd)
			app.Settings.Quiet = true
			defer func() { _ = app.Close() }()

			if err := app.Initialize(); err != nil {
				return err
			}

			runs, err := app.Journal.List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				_, _ = fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			printRuns(out, runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to show (0 for all)")
	return cmd
}

func printRuns(out io.Writer, runs []history.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STARTED\tOUTCOME\tCOMMITS\tSTREAK\tDURATION\tDETAIL")

	for _, r := range runs {
		streakCol := strconv.Itoa(r.Streak)
		if !r.StreakUpdated {
			streakCol += " (kept)"
		}

		detail := r.Error
		if detail == "" {
			detail = strings.Join(r.Messages, ", ")
		}
		if len(detail) > 60 {
			detail = detail[:57] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Outcome,
			r.Succeeded, r.Planned,
			streakCol,
			r.Duration().Round(time.Second),
			detail,
		)
	}
	_ = w.Flush()
}
