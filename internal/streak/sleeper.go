package streak

import (
	"context"
	"time"
)

// Sleeper suspends the commit loop between attempts
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in
	// the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to the Sleeper interface
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep implements Sleeper
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper returns a Sleeper that waits on a real timer
func TimerSleeper() Sleeper {
	return SleeperFunc(func(ctx context.Context, d time.Duration) error {
		if d <= 0 {
			return ctx.Err()
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}
