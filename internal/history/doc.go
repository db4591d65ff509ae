// Package history keeps a journal of gitstreak runs in a bbolt database
// (history.db in the home directory). Entries are stored as JSON under a
// monotonically increasing sequence key and listed newest first.
//
// The journal is informational. The streak itself lives in the state
// package, and a run whose history write fails still counts.
package history
