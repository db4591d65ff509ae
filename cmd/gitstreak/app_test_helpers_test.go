package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/errors"
	"github.com/shreyass0007/gitstreak/internal/logger"
	"github.com/shreyass0007/gitstreak/internal/streak"
)

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.Local)

type fakeOrchestrator struct {
	summary streak.Summary
	err     error
	calls   int
}

func (f *fakeOrchestrator) Run(context.Context) (streak.Summary, error) {
	f.calls++
	return f.summary, f.err
}

type fakeLocker struct {
	acquireErr error
	acquired   int
	released   int
}

func (f *fakeLocker) Acquire() error {
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.acquired++
	return nil
}

func (f *fakeLocker) Release() error {
	f.released++
	return nil
}

// fakeExecutor succeeds for every command except the git subcommands in fail
type fakeExecutor struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeExecutor) Execute(ctx context.Context, dir, name string, args ...string) error {
	_, err := f.ExecuteWithOutput(ctx, dir, name, args...)
	return err
}

func (f *fakeExecutor) ExecuteWithOutput(_ context.Context, _ string, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if len(args) > 0 && f.fail[args[0]] {
		return "", errors.NewGitError(args[0], args[1:], errors.ErrGitOperationFailed, "fatal: failed")
	}
	if len(args) > 0 && args[0] == "rev-parse" {
		return "true\n", nil
	}
	return "", nil
}

// testEnv collects the fakes shared by a command under test
type testEnv struct {
	home     string
	repo     string
	log      *logger.Recorder
	opts     AppOptions
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	lastApp  *App
	executor *fakeExecutor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Keep the developer's environment out of the tests
	for _, key := range []string{"GITSTREAK_HOME", "GITSTREAK_CONFIG", "GITSTREAK_LOG_FILE", "GITSTREAK_QUIET",
		"GITSTREAK_REPO_PATH", "GITSTREAK_BRANCH", "GITSTREAK_REMOTE",
		"GITSTREAK_MIN_COMMITS", "GITSTREAK_MAX_COMMITS", "GITSTREAK_COMMIT_DELAY"} {
		t.Setenv(key, "")
	}

	env := &testEnv{
		home:     t.TempDir(),
		repo:     t.TempDir(),
		log:      logger.NewRecorder(),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		executor: &fakeExecutor{fail: map[string]bool{}},
	}
	env.opts = AppOptions{
		Logger:       env.log,
		Executor:     env.executor,
		Clock:        common.ClockFunc(func() time.Time { return testNow }),
		ExecLookPath: func(string) (string, error) { return "/usr/bin/git", nil },
		Getwd:        func() (string, error) { return env.repo, nil },
	}
	return env
}

func (e *testEnv) newApp(settings *config.Settings, stdout, stderr io.Writer) *App {
	opts := e.opts
	opts.Settings = settings
	opts.Stdout = stdout
	opts.Stderr = stderr
	e.lastApp = NewApp(opts)
	return e.lastApp
}

func (e *testEnv) root(args ...string) *cobra.Command {
	cmd := newRootCmd(e.newApp)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetArgs(append([]string{"--home", e.home}, args...))
	return cmd
}

// writeConfig stores a config pointing at the test repository
func (e *testEnv) writeConfig(t *testing.T, mutate func(*config.Config)) {
	t.Helper()

	cfg := config.Defaults(e.repo)
	cfg.CommitDelay = 0
	if mutate != nil {
		mutate(&cfg)
	}
	store := config.NewStore(filepath.Join(e.home, config.ConfigFileName), cfg, e.log)
	require.NoError(t, store.Save(cfg))
}

func (e *testEnv) readHome(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.home, name))
	require.NoError(t, err)
	return string(data)
}

// orchestratorFunc adapts a function to the Orchestrator interface
type orchestratorFunc func(ctx context.Context) error

func (f orchestratorFunc) Run(ctx context.Context) (streak.Summary, error) {
	return streak.Summary{}, f(ctx)
}
