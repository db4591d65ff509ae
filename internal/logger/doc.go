// Package logger provides logging facilities for the gitstreak application.
//
// Every run appends to a single log file (git_commits.log in the home
// directory). Records are written with log/slog's text handler, so each line
// carries a timestamp and a severity. The same messages are echoed to the
// console with an emoji prefix.
//
// # Log Levels
//
//   - Info: file, plus stdout unless quiet
//   - Warning: file, plus stdout unless quiet
//   - Error: file and stderr, always
//   - InfoToUser, WarningToUser, Success: file and stdout, always
//   - StatusMessage: stdout only
//
// # Usage
//
//	log := logger.New(filepath.Join(home, "git_commits.log"), true)
//	defer log.Close()
//
//	log.Info("Starting scheduled commit task")
//	log.Error("Repository path does not exist: %s", repoPath)
//
// If the log file cannot be opened the records fall back to stderr so
// nothing is lost.
//
// # Testing
//
// Recorder implements Logger in memory and exposes the captured entries.
//
// # Thread Safety
//
// DefaultLogger and Recorder are safe for concurrent use.
package logger
