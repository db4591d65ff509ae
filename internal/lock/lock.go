package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

// FileName is the lock file created inside the home directory
const FileName = "gitstreak.lock"

// errLocked is returned by tryLock when another open file holds the lock
var errLocked = errors.New("lock is held")

// Locker prevents concurrent gitstreak runs against the same home directory.
// The lock is an advisory OS lock on FileName, so it disappears with the
// process that held it and a leftover file is never stale.
type Locker struct {
	lockFile string
	lockFd   *os.File
	pid      int
}

// New creates a Locker for the given home directory
func New(home string) *Locker {
	return &Locker{
		lockFile: filepath.Join(home, FileName),
		pid:      os.Getpid(),
	}
}

// Path returns the lock file location
func (l *Locker) Path() string {
	return l.lockFile
}

// Acquire takes the lock without blocking. When another process holds it
// the returned LockError wraps ErrAlreadyRunning and carries that process's PID.
func (l *Locker) Acquire() error {
	if l.lockFd != nil {
		return nil
	}

	fd, err := os.OpenFile(l.lockFile, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(errors.ErrLockAcquisitionFailure, "failed to open lock file: "+err.Error()))
	}

	if err := tryLock(fd); err != nil {
		_ = fd.Close()

		if errors.Is(err, errLocked) {
			otherPid, _ := readPid(l.lockFile)
			return errors.NewLockError(l.lockFile, otherPid, errors.ErrAlreadyRunning)
		}
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(errors.ErrLockAcquisitionFailure, "failed to lock: "+err.Error()))
	}

	l.lockFd = fd

	if err := l.writePid(); err != nil {
		if releaseErr := l.Release(); releaseErr != nil {
			return errors.Join(err, releaseErr)
		}
		return err
	}

	return nil
}

// Release drops the lock. It is safe to call when the lock is not held.
// The lock file itself is left in place; removing it would let a waiting
// process and a new one lock different files.
func (l *Locker) Release() error {
	if l.lockFd == nil {
		return nil
	}

	var err error

	// Clear the PID first so readers never see ours after we let go
	if truncErr := l.lockFd.Truncate(0); truncErr != nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(truncErr, "failed to clear lock file"))
	}

	if unlockErr := unlock(l.lockFd); unlockErr != nil && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(unlockErr, "failed to release lock"))
	}

	// Always close, even if previous operations failed
	if closeErr := l.lockFd.Close(); closeErr != nil && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(closeErr, "failed to close lock file"))
	}

	l.lockFd = nil
	return err
}

// writePid replaces the file content with the current PID
func (l *Locker) writePid() error {
	if err := l.lockFd.Truncate(0); err != nil {
		return errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(err, "failed to truncate lock file"))
	}
	if _, err := l.lockFd.WriteAt([]byte(strconv.Itoa(l.pid)), 0); err != nil {
		return errors.NewLockError(l.lockFile, l.pid,
			errors.Wrap(err, "failed to write PID to lock file"))
	}
	return nil
}

// readPid reads the PID recorded by the current holder
func readPid(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read lock file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrap(err, "invalid PID in lock file")
	}
	return pid, nil
}
