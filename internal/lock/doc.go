// Package lock keeps two gitstreak runs from updating the same home
// directory at once.
//
// The lock is an advisory OS file lock (flock on Unix, LockFileEx on
// Windows) on <home>/gitstreak.lock. The holder writes its PID into the
// file so a blocked run can report who is in the way. Because the kernel
// drops the lock when its holder exits, a lock file left behind by a crash
// is simply reused.
//
// Basic usage pattern:
//
//	locker := lock.New(home)
//	if err := locker.Acquire(); err != nil {
//	    if errors.Is(err, errors.ErrAlreadyRunning) {
//	        // another run is in progress
//	    }
//	    return err
//	}
//	defer locker.Release()
//
// A Locker is not safe for concurrent use by multiple goroutines.
package lock
