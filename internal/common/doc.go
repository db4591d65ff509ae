// Package common provides shared interfaces used throughout the gitstreak application.
//
// # Logger Interface
//
// The Logger interface separates the append-only log file (Info, Warning,
// Error) from user-facing console output (InfoToUser, WarningToUser, Success,
// StatusMessage). Components receive it by injection rather than reaching for
// a package-level logger:
//
//	type Committer struct {
//	    logger common.Logger
//	    // other fields
//	}
//
//	func (c *Committer) AttemptCommit(ctx context.Context, cfg config.Config) Attempt {
//	    c.logger.Info("Appending to %s", cfg.TrackedFile)
//	    // ...
//	}
//
// # Clock
//
// Clock supplies the current time to everything that needs "today" or a
// commit timestamp, so tests can pin the date.
//
// The package has no dependencies on other internal packages.
package common
