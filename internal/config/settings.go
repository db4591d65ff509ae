package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

// File names inside the home directory
const (
	ConfigFileName  = "config.json"
	LogFileName     = "git_commits.log"
	HistoryFileName = "history.db"
)

// Settings holds process-level options that decide where gitstreak keeps
// its files. They come from flags and the environment, never from the
// configuration record itself.
type Settings struct {
	// Home holds the config record, state files, log and history
	Home string

	// ConfigFile overrides <Home>/config.json
	ConfigFile string

	// LogFile overrides <Home>/git_commits.log
	LogFile string

	// Quiet hides info and warning echo on the console
	Quiet bool

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewSettings creates Settings with default values
func NewSettings() *Settings {
	return &Settings{
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment updates settings from environment variables
func (s *Settings) LoadFromEnvironment() {
	s.Home = getEnvString("GITSTREAK_HOME", s.Home)
	s.ConfigFile = getEnvString("GITSTREAK_CONFIG", s.ConfigFile)
	s.LogFile = getEnvString("GITSTREAK_LOG_FILE", s.LogFile)
	s.Quiet = getEnvBool("GITSTREAK_QUIET", s.Quiet)
}

// Finalize resolves defaults and makes every path absolute
func (s *Settings) Finalize() error {
	if s.Home == "" {
		// Follow XDG Base Directory Specification
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				dataDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				dataDir = os.TempDir()
			}
		}
		s.Home = filepath.Join(dataDir, "gitstreak")
	}

	absHome, err := filepath.Abs(s.Home)
	if err != nil {
		return errors.NewConfigError("home", s.Home, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	s.Home = absHome

	if err := os.MkdirAll(s.Home, 0755); err != nil {
		return errors.NewConfigError("home", s.Home, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to create home directory: %v", err)))
	}

	if s.ConfigFile == "" {
		s.ConfigFile = filepath.Join(s.Home, ConfigFileName)
	}
	if s.LogFile == "" {
		s.LogFile = filepath.Join(s.Home, LogFileName)
	}

	return nil
}

// HistoryFile is the bbolt database holding the run journal
func (s *Settings) HistoryFile() string {
	return filepath.Join(s.Home, HistoryFileName)
}
