// Package timeutil converts between calendar instants and the integer
// epoch-second representation stored in the database, and computes
// billing period boundaries. All arithmetic uses the host-local
// calendar; 0 is the sentinel for "no timestamp".
package timeutil

import "time"

// ToUnix converts a calendar instant to stored epoch seconds.
func ToUnix(t time.Time) int64 {
	return t.Unix()
}

// FromUnix converts stored epoch seconds back to a local instant.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// MonthStart returns the first instant (day 1, 00:00) of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns midnight of the last day of t's month: the first day
// of the following month minus one day. December rolls over into
// January of the next year.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0).AddDate(0, 0, -1)
}

// MonthBounds returns the billing period window for t's month as
// stored epoch seconds.
func MonthBounds(t time.Time) (start, end int64) {
	return ToUnix(MonthStart(t)), ToUnix(MonthEnd(t))
}
