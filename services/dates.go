package services

import "time"

// dayStartLocal truncates a timestamp to local midnight. "Today" boundaries
// are server-local by convention; no timezone negotiation with clients.
func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// daysBetween returns the whole calendar days from `from` to `to`, both
// truncated to local midnight first.
func daysBetween(from, to time.Time) int {
	return int(dayStartLocal(to).Sub(dayStartLocal(from)).Hours() / 24)
}
