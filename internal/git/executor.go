package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

// CommandExecutor runs external commands in a working directory. A non-zero
// exit status is reported as an error.
type CommandExecutor interface {
	// Execute runs the command and discards its standard output
	Execute(ctx context.Context, dir, name string, args ...string) error

	// ExecuteWithOutput runs the command and returns its standard output
	ExecuteWithOutput(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, dir, name string, args ...string) error {
	_, err := e.ExecuteWithOutput(ctx, dir, name, args...)
	return err
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, dir, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		operation, opArgs := name, args
		// For git, name the subcommand rather than the binary
		if name == "git" && len(args) > 0 {
			operation, opArgs = args[0], args[1:]
		}

		// Create a GitError that wraps the ErrGitOperationFailed sentinel error
		wrappedErr := errors.Wrap(errors.ErrGitOperationFailed, err.Error())
		return "", errors.NewGitError(operation, opArgs, wrappedErr, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
