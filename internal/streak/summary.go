package streak

import (
	"strings"
	"time"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/history"
)

// Phase names a step of a run
type Phase string

// Run phases in the order they are entered
const (
	PhaseInit                 Phase = "INIT"
	PhaseConfigLoaded         Phase = "CONFIG_LOADED"
	PhasePreconditionsChecked Phase = "PRECONDITIONS_CHECKED"
	PhaseCommitLoop           Phase = "COMMIT_LOOP"
	PhaseStateUpdate          Phase = "STATE_UPDATE"
	PhaseDone                 Phase = "DONE"
	PhaseFailed               Phase = "FAILED"
)

// Summary describes a finished run
type Summary struct {
	RunID      string
	Phase      Phase
	StartedAt  time.Time
	FinishedAt time.Time

	// Target is the number of commits drawn for this run
	Target    int
	Succeeded int
	Messages  []string

	// Gap is the number of days since the last recorded run. It is 0 on
	// a first run.
	Gap      int
	FirstRun bool

	// StateUpdated is true when streak and last-run date were written.
	// Streak is the new value in that case and the unchanged one otherwise.
	StateUpdated bool
	Streak       int

	// Skipped is set when the run stopped before the commit loop
	Skipped string
	// Failure describes what ended the commit loop early
	Failure string
}

// Complete reports whether every planned commit was pushed
func (s Summary) Complete() bool {
	return s.Skipped == "" && s.Phase != PhaseFailed && s.Succeeded == s.Target
}

// Outcome classifies the run for the history journal
func (s Summary) Outcome() history.Outcome {
	switch {
	case s.Phase == PhaseFailed:
		return history.OutcomeFailed
	case s.Skipped != "":
		return history.OutcomeSkipped
	case s.Succeeded == s.Target:
		return history.OutcomeComplete
	default:
		return history.OutcomePartial
	}
}

// HistoryRun converts the summary into a journal entry
func (s Summary) HistoryRun(runErr error) history.Run {
	run := history.Run{
		ID:            s.RunID,
		StartedAt:     s.StartedAt,
		FinishedAt:    s.FinishedAt,
		Planned:       s.Target,
		Succeeded:     s.Succeeded,
		Messages:      s.Messages,
		Streak:        s.Streak,
		StreakUpdated: s.StateUpdated,
		Outcome:       s.Outcome(),
	}

	switch {
	case runErr != nil:
		run.Error = runErr.Error()
	case s.Skipped != "":
		run.Error = s.Skipped
	case s.Failure != "":
		run.Error = s.Failure
	}

	return run
}

// PrintSummary writes a human-readable report of the run
func PrintSummary(logger common.Logger, s Summary) {
	duration := s.FinishedAt.Sub(s.StartedAt).Round(time.Second)

	logger.StatusMessage("")
	logger.StatusMessage("---------------------------------------------")
	logger.StatusMessage("📊 gitstreak Run Summary")
	logger.StatusMessage("---------------------------------------------")

	if s.Skipped != "" {
		logger.StatusMessage("⏭️  Run skipped: %s", s.Skipped)
	} else {
		logger.StatusMessage("✅ Commits made: %d/%d", s.Succeeded, s.Target)
		if len(s.Messages) > 0 {
			logger.StatusMessage("📝 Messages: %s", strings.Join(s.Messages, ", "))
		}
		if s.Failure != "" {
			logger.StatusMessage("⚠️  Stopped early: %s", s.Failure)
		}
	}

	if s.StateUpdated {
		logger.StatusMessage("🔥 Streak: %d days", s.Streak)
	} else {
		logger.StatusMessage("🔥 Streak: %d days (unchanged)", s.Streak)
	}
	logger.StatusMessage("⏱️  Duration: %s", duration)

	logger.StatusMessage("---------------------------------------------")
	logger.StatusMessage("🆔 Run %s finished at %s", s.RunID, s.FinishedAt.Format("2006-01-02 15:04:05"))
}
