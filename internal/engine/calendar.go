// Package engine holds the habit scheduling and analytics core: pure
// date arithmetic over habit schedules and completion records. Nothing
// in this package does I/O or reads the wall clock; every function is
// a pure function of its inputs so calls may run concurrently over the
// same snapshot without coordination.
package engine

import "time"

// DateLayout is the wire and storage form of a calendar date.
const DateLayout = "2006-01-02"

// DateOf truncates a time to its calendar date: midnight UTC. All
// engine date arithmetic operates on this canonical form.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a canonical date. Inputs
// that do not name a real calendar day (e.g. 2024-02-30) are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// nextDay steps one calendar day forward.
func nextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
