package streak

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/errors"
	"github.com/shreyass0007/gitstreak/internal/git"
	"github.com/shreyass0007/gitstreak/internal/history"
	"github.com/shreyass0007/gitstreak/internal/state"
)

// ConfigLoader provides the configuration for a run
type ConfigLoader interface {
	Load() config.Config
}

// StateStore persists the streak and the last run date
type StateStore interface {
	EnsureInitialized()
	Today() state.Date
	LastRunDate() (state.Date, bool)
	SetLastRunDate(state.Date)
	Streak() int
	SetStreak(int)
}

// Committer performs a single commit attempt
type Committer interface {
	AttemptCommit(ctx context.Context, cfg config.Config) git.Attempt
}

// Recorder stores finished runs
type Recorder interface {
	Record(run history.Run) (history.Run, error)
}

// Options contains the orchestrator's dependencies
type Options struct {
	// Required
	Config    ConfigLoader
	State     StateStore
	Committer Committer
	Logger    common.Logger

	// Optional; a nil History disables the journal
	History Recorder

	// Injected capabilities, defaulted when nil
	Chooser         git.Chooser
	Sleeper         Sleeper
	Clock           common.Clock
	CheckRepository func(path string) error
	RemoteURL       func(repoPath, remote string) (string, error)
	NewRunID        func() string
}

// Orchestrator drives one run: draw a commit count, perform the commits and
// apply the streak policy when all of them succeeded.
type Orchestrator struct {
	config    ConfigLoader
	state     StateStore
	committer Committer
	logger    common.Logger
	history   Recorder

	chooser         git.Chooser
	sleeper         Sleeper
	clock           common.Clock
	checkRepository func(string) error
	remoteURL       func(string, string) (string, error)
	newRunID        func() string
}

// New creates an Orchestrator. It panics when a required dependency is missing.
func New(opts Options) *Orchestrator {
	if opts.Config == nil || opts.State == nil || opts.Committer == nil || opts.Logger == nil {
		panic("Config, State, Committer and Logger are required in Options")
	}

	o := &Orchestrator{
		config:          opts.Config,
		state:           opts.State,
		committer:       opts.Committer,
		logger:          opts.Logger,
		history:         opts.History,
		chooser:         opts.Chooser,
		sleeper:         opts.Sleeper,
		clock:           opts.Clock,
		checkRepository: opts.CheckRepository,
		remoteURL:       opts.RemoteURL,
		newRunID:        opts.NewRunID,
	}

	if o.chooser == nil {
		o.chooser = git.RandomChooser()
	}
	if o.sleeper == nil {
		o.sleeper = TimerSleeper()
	}
	if o.clock == nil {
		o.clock = common.SystemClock()
	}
	if o.checkRepository == nil {
		o.checkRepository = git.CheckRepository
	}
	if o.remoteURL == nil {
		o.remoteURL = git.RemoteURL
	}
	if o.newRunID == nil {
		o.newRunID = func() string { return uuid.New().String() }
	}

	return o
}

// Run performs one run. Recoverable problems (bad state records, a missing
// repository, failed commits) are logged and reflected in the Summary. The
// returned error is non-nil only for unexpected failures, including panics.
func (o *Orchestrator) Run(ctx context.Context) (summary Summary, err error) {
	summary = Summary{
		RunID:     o.newRunID(),
		Phase:     PhaseInit,
		StartedAt: o.clock.Now(),
	}

	o.logger.Info("Starting scheduled commit task (run %s)", summary.RunID)

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic during %s: %v", summary.Phase, r)
			o.logger.Error("Run failed with error: %v", err)
			o.logger.Error("Traceback: %s", debug.Stack())
		} else if err != nil {
			o.logger.Error("Run failed with error: %v", err)
		}

		if err != nil {
			summary.Phase = PhaseFailed
		}
		summary.FinishedAt = o.clock.Now()

		o.record(summary, err)
	}()

	err = o.run(ctx, &summary)
	return summary, err
}

func (o *Orchestrator) run(ctx context.Context, summary *Summary) error {
	cfg := o.config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.state.EnsureInitialized()
	o.enter(summary, PhaseConfigLoaded)

	if err := o.checkRepository(cfg.RepoPath); err != nil {
		o.logger.Error("Repository path does not exist: %s", cfg.RepoPath)
		summary.Skipped = err.Error()
		summary.Streak = o.state.Streak()
		return nil
	}
	if url, err := o.remoteURL(cfg.RepoPath, cfg.Remote); err != nil {
		o.logger.Warning("Could not resolve remote %q: %v", cfg.Remote, err)
	} else {
		o.logger.Info("Pushing to %s (%s) branch %s", cfg.Remote, url, cfg.Branch)
	}
	o.enter(summary, PhasePreconditionsChecked)

	today := o.state.Today()
	if last, ok := o.state.LastRunDate(); ok {
		summary.Gap = state.DaysBetween(last, today)
	} else {
		summary.FirstRun = true
	}
	if missed := MissedDays(summary.Gap); missed > 0 {
		o.logger.Warning("Missed %d days since last commit", missed)
	}

	summary.Target = git.ChooseBetween(o.chooser, cfg.MinCommits, cfg.MaxCommits)
	o.logger.Info("Attempting to make %d commits today", summary.Target)
	o.enter(summary, PhaseCommitLoop)

	o.commitLoop(ctx, cfg, summary)

	if summary.Succeeded != summary.Target {
		summary.Streak = o.state.Streak()
		o.logger.Warning("Streak not updated: only %d/%d commits succeeded", summary.Succeeded, summary.Target)
	} else {
		o.enter(summary, PhaseStateUpdate)
		o.updateState(summary, today)
	}

	o.logger.Info("Made %d/%d commits successfully. Messages: %s",
		summary.Succeeded, summary.Target, strings.Join(summary.Messages, ", "))
	o.enter(summary, PhaseDone)

	return nil
}

// commitLoop attempts up to summary.Target commits, stopping at the first
// failure or when ctx is cancelled during the delay.
func (o *Orchestrator) commitLoop(ctx context.Context, cfg config.Config, summary *Summary) {
	for i := 0; i < summary.Target; i++ {
		attempt := o.committer.AttemptCommit(ctx, cfg)
		if !attempt.Success {
			o.logger.Error("Failed to make commit: %s", attempt.Detail)
			summary.Failure = attempt.Detail
			return
		}

		summary.Succeeded++
		summary.Messages = append(summary.Messages, attempt.Detail)
		o.logger.Info("Commit %d/%d pushed: %s", summary.Succeeded, summary.Target, attempt.Detail)

		if i < summary.Target-1 {
			if err := o.sleeper.Sleep(ctx, cfg.Delay()); err != nil {
				o.logger.Warning("Commit loop interrupted: %v", err)
				summary.Failure = fmt.Sprintf("interrupted after %d commits: %v", summary.Succeeded, err)
				return
			}
		}
	}
}

func (o *Orchestrator) updateState(summary *Summary, today state.Date) {
	old := o.state.Streak()
	next := NextStreak(old, summary.Gap, summary.FirstRun)

	o.state.SetStreak(next)
	if summary.FirstRun || summary.Gap <= 1 {
		o.logger.Info("Current streak: %d days", next)
	} else {
		o.logger.Info("Streak reset to 1 due to missed days")
	}
	o.state.SetLastRunDate(today)

	summary.StateUpdated = true
	summary.Streak = next
}

func (o *Orchestrator) enter(summary *Summary, phase Phase) {
	o.logger.Info("Run %s: %s -> %s", summary.RunID, summary.Phase, phase)
	summary.Phase = phase
}

func (o *Orchestrator) record(summary Summary, runErr error) {
	if o.history == nil {
		return
	}
	if _, err := o.history.Record(summary.HistoryRun(runErr)); err != nil {
		o.logger.Warning("Failed to record run history: %v", err)
	}
}
