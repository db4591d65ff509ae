// Package errors provides error handling utilities for the gitstreak application.
//
// This package defines the sentinel errors and typed errors shared by every
// other package, plus thin wrappers over the standard library errors package.
//
// # Sentinel Errors
//
//   - ErrRepositoryNotFound: the configured repository path is missing
//   - ErrGitOperationFailed: a git command exited non-zero
//   - ErrCommitFailed: a commit attempt failed before any git command ran
//   - ErrInvalidConfiguration: the configuration record is inconsistent
//   - ErrLockAcquisitionFailure, ErrAlreadyRunning: lock file problems
//
// # Typed Errors
//
// GitError, LockError, ConfigError and StateError carry the context of the
// failing operation and unwrap to their cause:
//
//	if err != nil {
//	    return errors.NewGitError("push", args, errors.Wrap(errors.ErrGitOperationFailed, err.Error()), stderr)
//	}
//
// All of them work with errors.Is and errors.As.
package errors
