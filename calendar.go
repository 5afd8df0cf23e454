// Package timecond implements an algebra of compositional time-range
// conditions: predicates over instants that also yield, for any
// reference instant, the range during which they are currently
// satisfied and the ranges when they will next be satisfied.
package timecond

import "time"

// StartOfDay returns the instant at 00:00:00 on t's calendar day, in
// t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n calendar days, following the
// ambient calendar's own normalisation rules (time.Time.AddDate).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths returns t shifted by n calendar months. Overflowing days
// (e.g. adding a month to Jan 31) follow time.Time's own
// normalisation, per spec.md §9.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// WeekdayIndex returns the day-of-week index of t, 0=Sunday..6=Saturday.
// This is exactly Go's own time.Weekday numbering, so no translation
// is required at the boundary.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// DateAt builds the instant at year/month/day, 00:00:00, in loc.
func DateAt(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
