package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/git"
	"github.com/shreyass0007/gitstreak/internal/history"
	"github.com/shreyass0007/gitstreak/internal/schedule"
	"github.com/shreyass0007/gitstreak/internal/state"
)

// statusReport is everything the status command shows
type statusReport struct {
	Home        string
	ConfigFile  string
	Initialized bool
	Config      config.Config

	Streak  int
	LastRun *state.Date
	Today   state.Date

	RemoteURL string
	RemoteErr string

	LastEntry *history.Run

	Schedule string
	NextRun  time.Time
}

// DaysSince returns the gap to the last run, or -1 without one
func (r statusReport) DaysSince() int {
	if r.LastRun == nil {
		return -1
	}
	return state.DaysBetween(*r.LastRun, r.Today)
}

// Due reports whether today's run has not happened yet
func (r statusReport) Due() bool {
	return r.DaysSince() != 0
}

func newStatusCmd(build func(*cobra.Command) *App) *cobra.Command {
	var sched string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current streak and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := build(cmd)
			// Reads log to the file only
			app.Settings.Quiet = true
			defer func() { _ = app.Close() }()

			report, err := app.Status(sched)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if isTerminal(out) {
				renderStatusStyled(out, report)
			} else {
				renderStatusPlain(out, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sched, "schedule", "", "cron schedule to compute the next run from (e.g. \"0 10 * * *\")")
	return cmd
}

// Status gathers the status report without modifying any file
func (a *App) Status(sched string) (statusReport, error) {
	if err := a.Initialize(); err != nil {
		return statusReport{}, err
	}

	report := statusReport{
		Home:       a.Settings.Home,
		ConfigFile: a.configStore.Path(),
		Today:      a.stateStore.Today(),
		Schedule:   sched,
	}

	// Load would create a missing record, so only read an existing one
	if _, err := os.Stat(report.ConfigFile); err == nil {
		report.Initialized = true
		report.Config = environmentLoader{store: a.configStore}.Load()
	}

	snap := a.stateStore.Snapshot()
	report.Streak = snap.Streak
	report.LastRun = snap.LastRun

	if report.Initialized {
		if url, err := git.RemoteURL(report.Config.RepoPath, report.Config.Remote); err != nil {
			report.RemoteErr = err.Error()
		} else {
			report.RemoteURL = url
		}
	}

	if runs, err := a.Journal.List(1); err != nil {
		a.Logger.Warning("Failed to read run history: %v", err)
	} else if len(runs) > 0 {
		report.LastEntry = &runs[0]
	}

	if sched != "" {
		next, err := schedule.Next(sched, a.clock.Now())
		if err != nil {
			return statusReport{}, err
		}
		report.NextRun = next
	}

	return report, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// statusRows returns the label/value pairs shown by both renderers
func statusRows(r statusReport) [][2]string {
	rows := [][2]string{
		{"Home", r.Home},
		{"Config", r.ConfigFile},
	}

	if !r.Initialized {
		rows = append(rows, [2]string{"Setup", "not initialized, run \"gitstreak init\""})
	} else {
		rows = append(rows,
			[2]string{"Repository", r.Config.RepoPath},
			[2]string{"Branch", r.Config.Remote + "/" + r.Config.Branch},
			[2]string{"Commits", fmt.Sprintf("%d-%d per run, %gs apart", r.Config.MinCommits, r.Config.MaxCommits, r.Config.CommitDelay)},
		)
		if r.RemoteErr != "" {
			rows = append(rows, [2]string{"Remote", "unavailable: " + r.RemoteErr})
		} else {
			rows = append(rows, [2]string{"Remote", r.RemoteURL})
		}
	}

	rows = append(rows, [2]string{"Streak", fmt.Sprintf("%d days", r.Streak)})

	switch days := r.DaysSince(); {
	case r.LastRun == nil:
		rows = append(rows, [2]string{"Last run", "never"})
	case days == 0:
		rows = append(rows, [2]string{"Last run", r.LastRun.String() + " (today)"})
	case days == 1:
		rows = append(rows, [2]string{"Last run", r.LastRun.String() + " (yesterday, run today to continue)"})
	default:
		rows = append(rows, [2]string{"Last run", fmt.Sprintf("%s (%d days ago, next run resets the streak)", r.LastRun, days)})
	}

	if e := r.LastEntry; e != nil {
		rows = append(rows, [2]string{"Last attempt", fmt.Sprintf("%s %s, %d/%d commits",
			e.StartedAt.Format("2006-01-02 15:04"), e.Outcome, e.Succeeded, e.Planned)})
	}

	if !r.NextRun.IsZero() {
		rows = append(rows, [2]string{"Next run", fmt.Sprintf("%s (%s)", r.NextRun.Format("2006-01-02 15:04 MST"), r.Schedule)})
	}

	return rows
}

func renderStatusPlain(w io.Writer, r statusReport) {
	for _, row := range statusRows(r) {
		_, _ = fmt.Fprintf(w, "%-13s %s\n", row[0]+":", row[1])
	}
}

func renderStatusStyled(w io.Writer, r statusReport) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	streakStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	if r.Due() {
		streakStyle = streakStyle.Foreground(lipgloss.Color("11"))
	}
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	lines := []string{titleStyle.Render("gitstreak status"), ""}
	for _, row := range statusRows(r) {
		value := row[1]
		if row[0] == "Streak" {
			value = streakStyle.Render(value)
		}
		lines = append(lines, labelStyle.Render(row[0])+value)
	}

	_, _ = fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}
