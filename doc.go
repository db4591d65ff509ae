// Package gitstreak keeps a daily contribution streak going.
//
// Each run appends a timestamped line to a tracked file in a git repository,
// commits it with a message picked from a fixed catalog, and pushes it. The
// number of commits per run is random within a configured range. A day counts
// toward the streak only when every commit of its run was pushed; missing a
// day resets the streak to 1 on the next successful run.
//
// # Quick Start
//
//	# Point gitstreak at a repository that has a remote
//	cd /path/to/your/repo
//	gitstreak init
//
//	# Make today's commits
//	gitstreak
//
//	# Or stay in the foreground and run every day at 10:00
//	gitstreak daemon --schedule "0 10 * * *"
//
// # Commands
//
//   - run: perform one run (the default when no command is given)
//   - init: write the configuration and create the state files
//   - status: show the streak, the last run and the next scheduled run
//   - history: list recent runs from the run journal
//   - daemon: run on a cron schedule until interrupted
//   - service: install or control the daemon as a system service
//   - version: print version information
//
// # Files
//
// Everything lives in the home directory ($GITSTREAK_HOME, by default
// $XDG_DATA_HOME/gitstreak):
//
//   - config.json: the configuration record (YAML is accepted with --config)
//   - streak.txt: the current streak count
//   - last_commit.txt: the date of the last successful run, YYYY-MM-DD
//   - git_commits.log: the activity log
//   - history.db: the run journal
//   - gitstreak.lock: held while a run is in progress
//
// # Module Structure
//
//   - cmd/gitstreak: Command-line interface and service wrapper
//   - internal/streak: Run orchestration and the streak policy
//   - internal/git: Commit attempts and repository inspection
//   - internal/state: Persisted streak count and last run date
//   - internal/config: Configuration record and process settings
//   - internal/schedule: Cron scheduling for the daemon
//   - internal/history: Run journal
//   - internal/lock: Single-instance locking
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities
//
// # Implementation Notes
//
// gitstreak uses the command-line Git executable rather than a Go Git
// library, so credentials and hooks behave as they do for the user. Commands
// are executed through an interface that tests replace.
//
// Interrupting a run with SIGINT, SIGTERM or SIGHUP stops it between commits.
// The run is then counted as incomplete and the streak is left alone.
package gitstreak
