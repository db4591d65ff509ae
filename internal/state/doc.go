// Package state persists the streak counter and the date of the last
// successful run as two small text files in the gitstreak home directory.
//
// Reads never fail: a missing or malformed record yields 0 for the streak
// and "no date" for the last run. Write failures are logged and otherwise
// ignored so that a run can still finish.
package state
