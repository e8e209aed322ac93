// Package schedule implements the day-grid arithmetic behind the
// timeline and roadmap views: bar placement on a fixed-width-per-day
// grid and range recomputation under interactive move/resize.
package schedule

import "time"

// Normalize truncates t to midnight UTC. All grid arithmetic runs on
// normalized dates so day deltas are exact integers.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the normalized date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// DaysBetween returns the whole-day difference to − from. Negative when
// to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(Normalize(to).Sub(Normalize(from)).Hours() / 24)
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return AddDays(t, -back)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}
