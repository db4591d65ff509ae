// Package git performs the commits that keep the streak going.
//
// A Committer appends one timestamped line, drawn from ContentTemplates, to
// the tracked file in the configured repository and publishes it:
//
//	git add <tracked_file>
//	git commit -m <message from CommitMessages>
//	git push <remote> <branch>
//
// The first failing step ends the attempt. Nothing is rolled back, so a
// failed attempt can leave an appended line or a local commit behind.
//
// Commands run through the CommandExecutor interface so tests can record
// them instead of invoking git. Random choices go through Chooser.
//
// RemoteURL reads a remote's URL straight from .git/config, which lets
// status reporting work without a git binary.
package git
