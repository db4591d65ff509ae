package state

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shreyass0007/gitstreak/internal/common"
	"github.com/shreyass0007/gitstreak/internal/errors"
)

// File names of the persisted scalars inside the home directory
const (
	StreakFileName  = "streak.txt"
	LastRunFileName = "last_commit.txt"
)

// RunState is a snapshot of both persisted scalars
type RunState struct {
	// LastRun is nil when no successful run has been recorded
	LastRun *Date
	Streak  int
}

// Store persists the streak count and the last successful run date as
// plain text files. Read failures fall back to defaults and write failures
// are logged; no method returns an error.
type Store struct {
	dir    string
	clock  common.Clock
	logger common.Logger

	// highest last-run date seen by this process
	lastRun *Date
}

// NewStore creates a Store keeping its files in dir
func NewStore(dir string, clock common.Clock, logger common.Logger) *Store {
	return &Store{
		dir:    dir,
		clock:  clock,
		logger: logger,
	}
}

// Today returns the current calendar day according to the store's clock
func (s *Store) Today() Date {
	return DateOf(s.clock.Now())
}

// LastRunDate returns the recorded last run date. ok is false when the
// record is missing or does not hold a YYYY-MM-DD date.
func (s *Store) LastRunDate() (date Date, ok bool) {
	path := s.path(LastRunFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Info("No last commit date found or invalid format: %v", err)
		return Date{}, false
	}

	date, err = ParseDate(string(data))
	if err != nil {
		s.logger.Info("No last commit date found or invalid format: %v", err)
		return Date{}, false
	}

	s.remember(date)
	return date, true
}

// SetLastRunDate overwrites the last run record. A date older than one this
// process already read or wrote is ignored.
func (s *Store) SetLastRunDate(date Date) {
	if s.lastRun != nil && date.Before(*s.lastRun) {
		s.logger.Warning("Refusing to move last commit date back from %s to %s", s.lastRun, date)
		return
	}
	s.remember(date)

	if err := s.write(LastRunFileName, date.String()); err != nil {
		s.logger.Error("Error updating last commit date: %v", err)
	}
}

// Streak returns the recorded streak, or 0 when the record is missing or
// does not hold a non-negative integer.
func (s *Store) Streak() int {
	path := s.path(StreakFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Info("No streak count found or invalid format: %v", err)
		return 0
	}

	streak, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		s.logger.Info("No streak count found or invalid format: %v", err)
		return 0
	}
	if streak < 0 {
		s.logger.Info("No streak count found or invalid format: negative streak %d", streak)
		return 0
	}

	return streak
}

// SetStreak overwrites the streak record. Negative values are stored as 0.
func (s *Store) SetStreak(streak int) {
	if streak < 0 {
		streak = 0
	}

	if err := s.write(StreakFileName, strconv.Itoa(streak)); err != nil {
		s.logger.Error("Error updating streak count: %v", err)
	}
}

// EnsureInitialized creates the streak record with 0 and the last run
// record with today's date when they do not exist yet. Existing records are
// left alone.
func (s *Store) EnsureInitialized() {
	initial := []struct {
		name    string
		content string
	}{
		{StreakFileName, "0"},
		{LastRunFileName, s.Today().String()},
	}

	for _, rec := range initial {
		path := s.path(rec.name)

		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			s.logger.Error("Error checking %s: %v", rec.name, err)
			continue
		}

		if err := s.write(rec.name, rec.content); err != nil {
			s.logger.Error("Error creating %s: %v", rec.name, err)
			continue
		}
		s.logger.Info("Created %s with initial content", rec.name)
	}
}

// Snapshot reads both records
func (s *Store) Snapshot() RunState {
	st := RunState{Streak: s.Streak()}
	if date, ok := s.LastRunDate(); ok {
		st.LastRun = &date
	}
	return st
}

// Dir returns the directory holding the records
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) remember(date Date) {
	if s.lastRun == nil || s.lastRun.Before(date) {
		d := date
		s.lastRun = &d
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) write(name, content string) error {
	path := s.path(name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewStateError(strings.TrimSuffix(name, ".txt"), path, err)
	}
	return nil
}
