package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

const (
	// DefaultMinCommits is the lower bound of commits per run
	DefaultMinCommits = 1

	// DefaultMaxCommits is the upper bound of commits per run
	DefaultMaxCommits = 10

	// DefaultCommitDelay between consecutive commits in seconds
	DefaultCommitDelay = 2.0

	// DefaultBranch pushed to on every commit
	DefaultBranch = "main"

	// DefaultRemote pushed to on every commit
	DefaultRemote = "origin"

	// DefaultTrackedFile is appended to inside the repository
	DefaultTrackedFile = "daily_streak.txt"
)

// Config is the persisted configuration record. It is loaded once per run
// and not modified afterwards.
type Config struct {
	RepoPath    string  `json:"repo_path" yaml:"repo_path"`
	MinCommits  int     `json:"min_commits" yaml:"min_commits"`
	MaxCommits  int     `json:"max_commits" yaml:"max_commits"`
	CommitDelay float64 `json:"commit_delay" yaml:"commit_delay"`
	Branch      string  `json:"branch" yaml:"branch"`
	Remote      string  `json:"remote" yaml:"remote"`
	TrackedFile string  `json:"tracked_file" yaml:"tracked_file"`
}

// Defaults returns the built-in configuration for the given repository path
func Defaults(repoPath string) Config {
	return Config{
		RepoPath:    repoPath,
		MinCommits:  DefaultMinCommits,
		MaxCommits:  DefaultMaxCommits,
		CommitDelay: DefaultCommitDelay,
		Branch:      DefaultBranch,
		Remote:      DefaultRemote,
		TrackedFile: DefaultTrackedFile,
	}
}

// Delay converts CommitDelay to a duration
func (c Config) Delay() time.Duration {
	return time.Duration(c.CommitDelay * float64(time.Second))
}

// Validate checks that the record can drive a run
func (c Config) Validate() error {
	invalid := func(param string, value interface{}, msg string) error {
		return errors.NewConfigError(param, value, errors.Wrap(errors.ErrInvalidConfiguration, msg))
	}

	if c.RepoPath == "" {
		return invalid("repo_path", nil, "must not be empty")
	}
	if c.MinCommits < 0 {
		return invalid("min_commits", c.MinCommits, "must not be negative")
	}
	if c.MaxCommits < c.MinCommits {
		return invalid("max_commits", c.MaxCommits, fmt.Sprintf("must be at least min_commits (%d)", c.MinCommits))
	}
	if c.CommitDelay < 0 || math.IsNaN(c.CommitDelay) || math.IsInf(c.CommitDelay, 0) {
		return invalid("commit_delay", c.CommitDelay, "must be a non-negative number of seconds")
	}
	if strings.TrimSpace(c.Branch) == "" {
		return invalid("branch", nil, "must not be empty")
	}
	if strings.TrimSpace(c.Remote) == "" {
		return invalid("remote", nil, "must not be empty")
	}
	if c.TrackedFile == "" || filepath.IsAbs(c.TrackedFile) ||
		strings.HasPrefix(filepath.Clean(c.TrackedFile), "..") {
		return invalid("tracked_file", c.TrackedFile, "must be a relative path inside the repository")
	}
	return nil
}

// ApplyEnvironment overrides fields from GITSTREAK_* environment variables
func (c *Config) ApplyEnvironment() {
	c.RepoPath = getEnvString("GITSTREAK_REPO_PATH", c.RepoPath)
	c.Branch = getEnvString("GITSTREAK_BRANCH", c.Branch)
	c.Remote = getEnvString("GITSTREAK_REMOTE", c.Remote)
	c.MinCommits = getEnvInt("GITSTREAK_MIN_COMMITS", c.MinCommits)
	c.MaxCommits = getEnvInt("GITSTREAK_MAX_COMMITS", c.MaxCommits)
	c.CommitDelay = getEnvFloat("GITSTREAK_COMMIT_DELAY", c.CommitDelay)
}

// getEnvString returns a non-empty environment variable or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as int or a default value
func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvFloat returns an environment variable as float64 or a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}
