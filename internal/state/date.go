package state

import (
	"strings"
	"time"
)

// DateLayout is the on-disk format of the last run record
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day or zone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string, ignoring surrounding whitespace
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.midnight().Format(DateLayout)
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls on an earlier day than other
func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

// AddDays returns the date n calendar days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from "from" to "to".
// It is negative when "to" is earlier than "from".
func DaysBetween(from, to Date) int {
	// UTC midnights have no DST transitions, so the division is exact
	return int(to.midnight().Sub(from.midnight()).Hours() / 24)
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
