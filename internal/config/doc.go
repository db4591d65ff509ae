// Package config provides configuration handling for the gitstreak application.
//
// Two kinds of settings live here:
//
//   - Config: the persisted configuration record (repo_path, min_commits,
//     max_commits, commit_delay, branch, remote, tracked_file), loaded by a
//     Store from JSON or YAML.
//   - Settings: process-level options (home directory, config/log file
//     locations, quiet mode) taken from flags and the environment.
//
// # Configuration Sources
//
// Values are applied with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. The configuration record
// 4. Default values (lowest priority)
//
// # Environment Variables
//
//	GITSTREAK_HOME          Home directory (default: $XDG_DATA_HOME/gitstreak)
//	GITSTREAK_CONFIG        Configuration record (default: <home>/config.json)
//	GITSTREAK_LOG_FILE      Log file (default: <home>/git_commits.log)
//	GITSTREAK_QUIET         Hide info and warning console output
//	GITSTREAK_REPO_PATH     Overrides repo_path
//	GITSTREAK_BRANCH        Overrides branch
//	GITSTREAK_REMOTE        Overrides remote
//	GITSTREAK_MIN_COMMITS   Overrides min_commits
//	GITSTREAK_MAX_COMMITS   Overrides max_commits
//	GITSTREAK_COMMIT_DELAY  Overrides commit_delay (seconds)
//
// # Loading Rules
//
// Store.Load never fails. A missing record is written out with the
// defaults, a corrupt one is logged and replaced by the defaults in memory,
// and a valid one is merged over the defaults key by key.
package config
