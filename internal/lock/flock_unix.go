//go:build unix

package lock

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/shreyass0007/gitstreak/internal/errors"
)

// tryLock takes an exclusive non-blocking flock on f
func tryLock(f *os.File) error {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	// Older systems report EWOULDBLOCK and EAGAIN as distinct codes
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
		return errLocked
	}
	return err
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
