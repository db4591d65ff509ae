package git

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

// CheckRepository verifies that path exists and is a directory
func CheckRepository(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(errors.ErrRepositoryNotFound, "%s: %v", path, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(errors.ErrRepositoryNotFound, "%s is not a directory", path)
	}
	return nil
}

// IsRepository reports whether path is inside a git work tree
func IsRepository(ctx context.Context, executor CommandExecutor, path string) (bool, error) {
	out, err := executor.ExecuteWithOutput(ctx, path, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		var gitErr *errors.GitError
		if errors.As(err, &gitErr) {
			// git itself ran and said no
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

// RemoteURL reads the URL of the named remote from the repository's
// .git/config without invoking git.
func RemoteURL(repoPath, remote string) (string, error) {
	configPath, err := gitConfigPath(repoPath)
	if err != nil {
		return "", err
	}

	cfg, err := ini.Load(configPath)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", configPath)
	}

	sec, err := cfg.GetSection(fmt.Sprintf("remote %q", remote))
	if err != nil || !sec.HasKey("url") {
		return "", errors.Errorf("remote %q is not configured in %s", remote, configPath)
	}

	return sec.Key("url").String(), nil
}

// gitConfigPath resolves .git/config, following a "gitdir:" pointer file
// as used by worktrees and submodules.
func gitConfigPath(repoPath string) (string, error) {
	dotGit := filepath.Join(repoPath, ".git")

	info, err := os.Stat(dotGit)
	if err != nil {
		return "", errors.Wrapf(errors.ErrRepositoryNotFound, "%s: %v", repoPath, err)
	}
	if info.IsDir() {
		return filepath.Join(dotGit, "config"), nil
	}

	f, err := os.Open(dotGit)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if gitDir, ok := strings.CutPrefix(line, "gitdir:"); ok {
			gitDir = strings.TrimSpace(gitDir)
			if !filepath.IsAbs(gitDir) {
				gitDir = filepath.Join(repoPath, gitDir)
			}
			// Worktrees keep the shared config in the common directory
			if commonDir, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
				dir := strings.TrimSpace(string(commonDir))
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(gitDir, dir)
				}
				gitDir = dir
			}
			return filepath.Join(gitDir, "config"), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", errors.Wrapf(errors.ErrRepositoryNotFound, "%s has no gitdir pointer", dotGit)
}
