package streak

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/config"
	"github.com/shreyass0007/gitstreak/internal/git"
	"github.com/shreyass0007/gitstreak/internal/history"
	"github.com/shreyass0007/gitstreak/internal/logger"
	"github.com/shreyass0007/gitstreak/internal/state"
)

var testToday = state.Date{Year: 2026, Month: time.March, Day: 14}

type staticConfig struct {
	cfg config.Config
}

func (s staticConfig) Load() config.Config {
	return s.cfg
}

// scriptedCommitter succeeds until failAt (1-indexed, 0 = never)
type scriptedCommitter struct {
	mu      sync.Mutex
	calls   int
	failAt  int
	panicAt int
}

func (c *scriptedCommitter) AttemptCommit(_ context.Context, _ config.Config) git.Attempt {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.panicAt == c.calls {
		panic("executor exploded")
	}
	if c.failAt == c.calls {
		return git.Attempt{Detail: "git push failed: rejected"}
	}
	return git.Attempt{Success: true, Detail: "message " + strconv.Itoa(c.calls)}
}

type recordingSleeper struct {
	slept []time.Duration
	err   error
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return s.err
}

type memoryHistory struct {
	runs []history.Run
	err  error
}

func (m *memoryHistory) Record(run history.Run) (history.Run, error) {
	m.runs = append(m.runs, run)
	return run, m.err
}

// harness wires an Orchestrator to a real state store in a temp home
type harness struct {
	home      string
	cfg       config.Config
	store     *state.Store
	committer *scriptedCommitter
	sleeper   *recordingSleeper
	history   *memoryHistory
	log       *logger.Recorder
	pick      int
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		home:      t.TempDir(),
		cfg:       config.Defaults(t.TempDir()),
		committer: &scriptedCommitter{},
		sleeper:   &recordingSleeper{},
		history:   &memoryHistory{},
		log:       logger.NewRecorder(),
	}
	h.store = state.NewStore(h.home, h.clock(), h.log)

	return h
}

func (h *harness) clock() common.Clock {
	return common.ClockFunc(func() time.Time {
		return time.Date(testToday.Year, testToday.Month, testToday.Day, 9, 0, 0, 0, time.Local)
	})
}

// commits fixes the drawn commit count to n
func (h *harness) commits(n int) {
	h.cfg.MinCommits = n
	h.cfg.MaxCommits = n
}

func (h *harness) seed(t *testing.T, lastRun string, streak int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.home, state.LastRunFileName), []byte(lastRun), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(h.home, state.StreakFileName), []byte(strconv.Itoa(streak)), 0644))
}

func (h *harness) orchestrator() *Orchestrator {
	return New(Options{
		Config:    staticConfig{cfg: h.cfg},
		State:     h.store,
		Committer: h.committer,
		Logger:    h.log,
		History:   h.history,
		Chooser:   git.ChooserFunc(func(int) int { return h.pick }),
		Sleeper:   h.sleeper,
		Clock:     h.clock(),
		RemoteURL: func(string, string) (string, error) { return "git@example.com:me/streak.git", nil },
		NewRunID:  func() string { return "run-1" },
	})
}

func (h *harness) readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(h.home, name))
	require.NoError(t, err)
	return string(data)
}

// snapshotDir returns every regular file under dir with its content
func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[path] = string(data)
		return nil
	})
	require.NoError(t, err)

	return files
}
