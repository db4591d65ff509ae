package git

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

const sampleGitConfig = `[core]
	repositoryformatversion = 0
	bare = false
[remote "origin"]
	url = git@github.com:example/streak.git
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	remote = origin
	merge = refs/heads/main
`

func writeGitConfig(t *testing.T, gitDir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte(sampleGitConfig), 0644))
}

func TestCheckRepository(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.NoError(t, CheckRepository(dir))
	assert.True(t, errors.Is(CheckRepository(filepath.Join(dir, "nope")), errors.ErrRepositoryNotFound))
	assert.True(t, errors.Is(CheckRepository(file), errors.ErrRepositoryNotFound))
}

func TestRemoteURL(t *testing.T) {
	repo := t.TempDir()
	writeGitConfig(t, filepath.Join(repo, ".git"))

	url, err := RemoteURL(repo, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:example/streak.git", url)

	_, err = RemoteURL(repo, "upstream")
	assert.Error(t, err)

	_, err = RemoteURL(t.TempDir(), "origin")
	assert.True(t, errors.Is(err, errors.ErrRepositoryNotFound))
}

func TestRemoteURLWorktree(t *testing.T) {
	root := t.TempDir()
	mainGit := filepath.Join(root, "main", ".git")
	writeGitConfig(t, mainGit)

	wtGit := filepath.Join(mainGit, "worktrees", "feature")
	require.NoError(t, os.MkdirAll(wtGit, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(wtGit, "commondir"), []byte("../..\n"), 0644))

	wt := filepath.Join(root, "feature")
	require.NoError(t, os.MkdirAll(wt, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: "+wtGit+"\n"), 0644))

	url, err := RemoteURL(wt, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:example/streak.git", url)
}

func TestIsRepository(t *testing.T) {
	exec := newMockExecutor()
	exec.outputs["rev-parse"] = "true\n"

	ok, err := IsRepository(context.Background(), exec, "/repo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"git rev-parse --is-inside-work-tree"}, exec.commands())

	exec.failOn["rev-parse"] = errors.NewGitError("rev-parse", nil, errors.ErrGitOperationFailed, "fatal: not a git repository")
	ok, err = IsRepository(context.Background(), exec, "/repo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExecExecutor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	e := NewExecExecutor()
	dir := t.TempDir()

	out, err := e.ExecuteWithOutput(context.Background(), dir, "sh", "-c", "pwd")
	require.NoError(t, err)
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, []string{dir, resolved}, filepath.Clean(out[:len(out)-1]))

	err = e.Execute(context.Background(), dir, "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	var gitErr *errors.GitError
	require.True(t, errors.As(err, &gitErr))
	assert.Equal(t, "sh", gitErr.Operation)
	assert.Equal(t, "oops", gitErr.Output)
	assert.True(t, errors.Is(err, errors.ErrGitOperationFailed))
}
