package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

func TestDefaults(t *testing.T) {
	c := Defaults("/repo")

	assert.Equal(t, "/repo", c.RepoPath)
	assert.Equal(t, DefaultMinCommits, c.MinCommits)
	assert.Equal(t, DefaultMaxCommits, c.MaxCommits)
	assert.Equal(t, DefaultCommitDelay, c.CommitDelay)
	assert.Equal(t, DefaultBranch, c.Branch)
	assert.Equal(t, DefaultRemote, c.Remote)
	assert.Equal(t, DefaultTrackedFile, c.TrackedFile)
	assert.Equal(t, 2*time.Second, c.Delay())
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate    func(c *Config)
		wantParam string
	}{
		"defaults are valid":        {mutate: func(c *Config) {}},
		"zero commits is valid":     {mutate: func(c *Config) { c.MinCommits, c.MaxCommits = 0, 0 }},
		"zero delay is valid":       {mutate: func(c *Config) { c.CommitDelay = 0 }},
		"empty repo path":           {mutate: func(c *Config) { c.RepoPath = "" }, wantParam: "repo_path"},
		"negative min":              {mutate: func(c *Config) { c.MinCommits = -1 }, wantParam: "min_commits"},
		"max below min":             {mutate: func(c *Config) { c.MinCommits, c.MaxCommits = 5, 4 }, wantParam: "max_commits"},
		"negative delay":            {mutate: func(c *Config) { c.CommitDelay = -0.5 }, wantParam: "commit_delay"},
		"blank branch":              {mutate: func(c *Config) { c.Branch = "  " }, wantParam: "branch"},
		"empty remote":              {mutate: func(c *Config) { c.Remote = "" }, wantParam: "remote"},
		"absolute tracked file":     {mutate: func(c *Config) { c.TrackedFile = "/etc/passwd" }, wantParam: "tracked_file"},
		"tracked file escapes repo": {mutate: func(c *Config) { c.TrackedFile = "../outside.txt" }, wantParam: "tracked_file"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Defaults("/repo")
			tc.mutate(&c)

			err := c.Validate()
			if tc.wantParam == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfiguration))

			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.wantParam, cfgErr.Parameter)
		})
	}
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv("GITSTREAK_REPO_PATH", "/env/repo")
	t.Setenv("GITSTREAK_BRANCH", "develop")
	t.Setenv("GITSTREAK_MIN_COMMITS", "2")
	t.Setenv("GITSTREAK_MAX_COMMITS", "not-a-number")
	t.Setenv("GITSTREAK_COMMIT_DELAY", "0.25")
	t.Setenv("GITSTREAK_REMOTE", "")

	c := Defaults("/repo")
	c.ApplyEnvironment()

	assert.Equal(t, "/env/repo", c.RepoPath)
	assert.Equal(t, "develop", c.Branch)
	assert.Equal(t, 2, c.MinCommits)
	assert.Equal(t, DefaultMaxCommits, c.MaxCommits, "unparsable values keep the previous value")
	assert.Equal(t, 0.25, c.CommitDelay)
	assert.Equal(t, DefaultRemote, c.Remote, "empty values are ignored")
}

func TestSettingsFinalize(t *testing.T) {
	t.Run("explicit home", func(t *testing.T) {
		home := filepath.Join(t.TempDir(), "streak-home")
		s := NewSettings()
		s.Home = home

		require.NoError(t, s.Finalize())

		info, err := os.Stat(home)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, filepath.Join(home, ConfigFileName), s.ConfigFile)
		assert.Equal(t, filepath.Join(home, LogFileName), s.LogFile)
		assert.Equal(t, filepath.Join(home, HistoryFileName), s.HistoryFile())
	})

	t.Run("XDG data home", func(t *testing.T) {
		dataHome := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dataHome)

		s := NewSettings()
		require.NoError(t, s.Finalize())

		assert.Equal(t, filepath.Join(dataHome, "gitstreak"), s.Home)
	})

	t.Run("explicit files are kept", func(t *testing.T) {
		s := NewSettings()
		s.Home = t.TempDir()
		s.ConfigFile = "/etc/gitstreak.yaml"
		s.LogFile = "/var/log/gitstreak.log"

		require.NoError(t, s.Finalize())

		assert.Equal(t, "/etc/gitstreak.yaml", s.ConfigFile)
		assert.Equal(t, "/var/log/gitstreak.log", s.LogFile)
	})
}

func TestSettingsLoadFromEnvironment(t *testing.T) {
	t.Setenv("GITSTREAK_HOME", "/env/home")
	t.Setenv("GITSTREAK_CONFIG", "/env/config.yaml")
	t.Setenv("GITSTREAK_QUIET", "yes")

	s := NewSettings()
	s.LoadFromEnvironment()

	assert.Equal(t, "/env/home", s.Home)
	assert.Equal(t, "/env/config.yaml", s.ConfigFile)
	assert.True(t, s.Quiet)
	assert.Equal(t, "dev", s.VersionInfo.Version)
}
