package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/errors"
	"github.com/shreyass0007/gitstreak/internal/git"
	"github.com/shreyass0007/gitstreak/internal/history"
	"github.com/shreyass0007/gitstreak/internal/lock"
	"github.com/shreyass0007/gitstreak/internal/logger"
	"github.com/shreyass0007/gitstreak/internal/state"
	"github.com/shreyass0007/gitstreak/internal/streak"
)

// Orchestrator performs a single run
type Orchestrator interface {
	Run(ctx context.Context) (streak.Summary, error)
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// Journal stores and lists finished runs
type Journal interface {
	Record(run history.Run) (history.Run, error)
	List(limit int) ([]history.Run, error)
	Close() error
}

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Settings *config.Settings

	// Optional components
	Logger       logger.Logger
	Locker       Locker
	Journal      Journal
	Orchestrator Orchestrator

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Executor     git.CommandExecutor
	Clock        common.Clock
	ExecLookPath func(file string) (string, error)
	Getwd        func() (string, error)
}

// App is the main gitstreak application
type App struct {
	Settings     *config.Settings
	Logger       logger.Logger
	Locker       Locker
	Journal      Journal
	Orchestrator Orchestrator

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	executor     git.CommandExecutor
	clock        common.Clock
	execLookPath func(file string) (string, error)
	getwd        func() (string, error)

	configStore *config.Store
	stateStore  *state.Store
	initialized bool
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Settings == nil {
		panic("Settings is required in AppOptions")
	}

	app := &App{
		Settings:     opts.Settings,
		Logger:       opts.Logger,
		Locker:       opts.Locker,
		Journal:      opts.Journal,
		Orchestrator: opts.Orchestrator,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		executor:     opts.Executor,
		clock:        opts.Clock,
		execLookPath: opts.ExecLookPath,
		getwd:        opts.Getwd,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.executor == nil {
		app.executor = git.NewExecExecutor()
	}
	if app.clock == nil {
		app.clock = common.SystemClock()
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.getwd == nil {
		app.getwd = os.Getwd
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	if err := a.Settings.Finalize(); err != nil {
		// Finalize already returns a wrapped configuration error
		if errors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Settings.LogFile, !a.Settings.Quiet, a.Stdout, a.Stderr)
	}

	cwd, err := a.getwd()
	if err != nil {
		return errors.Wrap(err, "failed to determine working directory")
	}
	a.configStore = config.NewStore(a.Settings.ConfigFile, config.Defaults(cwd), a.Logger)
	a.stateStore = state.NewStore(a.Settings.Home, a.clock, a.Logger)

	if a.Locker == nil {
		a.Locker = lock.New(a.Settings.Home)
	}

	if a.Journal == nil {
		a.Journal = history.FileJournal{Path: a.Settings.HistoryFile()}
	}

	if a.Orchestrator == nil {
		a.Orchestrator = streak.New(streak.Options{
			Config:    environmentLoader{store: a.configStore},
			State:     a.stateStore,
			Committer: git.NewCommitterWithDeps(a.executor, git.RandomChooser(), a.clock, a.Logger),
			Logger:    a.Logger,
			History:   a.Journal,
			Clock:     a.clock,
		})
	}

	a.initialized = true
	return nil
}

// RunOnce performs one guarded run. A run blocked by another holder of the
// lock is logged and treated as a normal, skipped run.
func (a *App) RunOnce(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	if _, err := a.execLookPath("git"); err != nil {
		a.Logger.Warning("git is not found in PATH, commits will fail: %v", err)
	}

	if err := a.Locker.Acquire(); err != nil {
		if errors.Is(err, errors.ErrAlreadyRunning) {
			a.Logger.Error("Skipping run: %v", err)
			return nil
		}
		return errors.Wrap(errors.ErrLockAcquisitionFailure, err.Error())
	}
	defer func() {
		if err := a.Locker.Release(); err != nil {
			a.Logger.Error("Failed to release lock: %v", err)
		}
	}()

	summary, err := a.Orchestrator.Run(ctx)
	streak.PrintSummary(a.Logger, summary)

	return err
}

// ConfigStore returns the configuration store; Initialize must have run
func (a *App) ConfigStore() *config.Store {
	return a.configStore
}

// StateStore returns the state store; Initialize must have run
func (a *App) StateStore() *state.Store {
	return a.stateStore
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "gitstreak %s (%s) built on %s\n",
		a.Settings.VersionInfo.Version,
		a.Settings.VersionInfo.Commit,
		a.Settings.VersionInfo.Date)
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Journal != nil {
		if err := a.Journal.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// environmentLoader applies GITSTREAK_* overrides on top of the stored record
type environmentLoader struct {
	store *config.Store
}

func (l environmentLoader) Load() config.Config {
	cfg := l.store.Load()
	cfg.ApplyEnvironment()
	return cfg
}
