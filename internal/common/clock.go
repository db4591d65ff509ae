package common

import "time"

// Clock supplies the current time. Components take a Clock instead of
// calling time.Now so tests can pin "today".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the wall clock in the local time zone
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
