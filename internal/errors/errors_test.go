package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrap(originalErr, "wrapped message")

	if !Is(wrappedErr, originalErr) {
		t.Errorf("Expected wrapped error to match original, but it didn't")
	}

	expectedMsg := "wrapped message: original error"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, wrappedErr.Error())
	}
}

func TestWrapf(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrapf(originalErr, "push to %s", "origin/main")

	if !Is(wrappedErr, originalErr) {
		t.Errorf("Expected wrapped error to match original, but it didn't")
	}

	expectedMsg := "push to origin/main: original error"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, wrappedErr.Error())
	}
}

func TestGitError(t *testing.T) {
	err := errors.New("exit status 128")
	gitErr := NewGitError("push", []string{"origin", "main"}, err, "rejected")

	expectedMsg := "git push failed: rejected: exit status 128"
	if gitErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, gitErr.Error())
	}

	if !errors.Is(gitErr, err) {
		t.Errorf("Expected GitError.Unwrap() to return the original error")
	}
}

func TestLockError(t *testing.T) {
	err := errors.New("file not found")
	lockErr := NewLockError("/tmp/lock.file", 1234, err)

	expectedMsg := "lock error with file /tmp/lock.file (PID: 1234): file not found"
	if lockErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, lockErr.Error())
	}

	lockErr = NewLockError("/tmp/lock.file", 0, err)
	expectedMsg = "lock error with file /tmp/lock.file: file not found"
	if lockErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, lockErr.Error())
	}

	if !errors.Is(lockErr, err) {
		t.Errorf("Expected LockError.Unwrap() to return the original error")
	}
}

func TestConfigError(t *testing.T) {
	err := errors.New("invalid value")
	configErr := NewConfigError("max_commits", 0, err)

	expectedMsg := "configuration error for max_commits = 0: invalid value"
	if configErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, configErr.Error())
	}

	configErr = NewConfigError("branch", nil, err)
	expectedMsg = "configuration error for branch: invalid value"
	if configErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, configErr.Error())
	}

	if !errors.Is(configErr, err) {
		t.Errorf("Expected ConfigError.Unwrap() to return the original error")
	}
}

func TestStateError(t *testing.T) {
	err := errors.New("permission denied")
	stateErr := NewStateError("streak", "/data/streak.txt", err)

	expectedMsg := "state record streak (/data/streak.txt): permission denied"
	if stateErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, stateErr.Error())
	}

	if !errors.Is(stateErr, err) {
		t.Errorf("Expected StateError.Unwrap() to return the original error")
	}
}

func TestErrorMatching(t *testing.T) {
	gitErr := NewGitError("commit", nil, ErrGitOperationFailed, "")

	if !Is(gitErr, ErrGitOperationFailed) {
		t.Errorf("Expected gitErr to match ErrGitOperationFailed")
	}

	var ge *GitError
	if !As(gitErr, &ge) {
		t.Errorf("Expected gitErr to match GitError type")
	}

	wrappedErr := Wrap(gitErr, "commit attempt 2 of 4")

	if !Is(wrappedErr, ErrGitOperationFailed) {
		t.Errorf("Expected wrappedErr to match ErrGitOperationFailed")
	}

	if !As(wrappedErr, &ge) {
		t.Errorf("Expected wrappedErr to match GitError type")
	}
}

func TestJoin(t *testing.T) {
	first := New("release lock")
	second := New("close log file")

	joined := Join(first, nil, second)
	if !Is(joined, first) || !Is(joined, second) {
		t.Errorf("Expected joined error to match both inputs, got %v", joined)
	}

	if Join(nil, nil) != nil {
		t.Errorf("Expected Join of nils to be nil")
	}
}

func ExampleWrap() {
	err := fmt.Errorf("original error")

	wrapped := Wrap(err, "context information")

	fmt.Println(wrapped)
	// Output: context information: original error
}

func ExampleNewGitError() {
	err := NewGitError("push", []string{"origin", "main"}, fmt.Errorf("connection failed"), "")

	fmt.Println(err)
	// Output: git push failed: connection failed
}

func ExampleNewConfigError() {
	err := NewConfigError("commit_delay", -1, fmt.Errorf("must not be negative"))

	fmt.Println(err)
	// Output: configuration error for commit_delay = -1: must not be negative
}
