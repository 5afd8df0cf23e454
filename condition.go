package timecond

import "time"

// Condition is a predicate over instants that also yields its
// governing ranges. Every variant in this package implements it;
// conditions are immutable after construction and safe to query
// concurrently.
type Condition interface {
	// Contains reports whether the condition holds at t.
	Contains(t time.Time) bool

	// LastActiveRange returns the most recent range with Start <= t
	// during which the condition held, if any.
	LastActiveRange(t time.Time) (DateRange, bool)

	// NextStart returns the start of the first upcoming range,
	// strictly after t.
	NextStart(t time.Time) (time.Time, bool)

	// CurrentEnd returns the end of LastActiveRange(t), if that range
	// is bounded and exists.
	CurrentEnd(t time.Time) (time.Time, bool)

	// NextRanges returns the upcoming ranges strictly after t.
	NextRanges(t time.Time) RangeSet

	// Accept notifies v which concrete variant this condition is, so
	// external describers can pattern-match without a type switch.
	Accept(v Visitor)
}

// Visitor is the double-dispatch hook external describers use to walk
// a condition tree; each method exposes one variant's public fields.
type Visitor interface {
	VisitTimeDelta(*TimeDeltaCond)
	VisitTimeBetween(*TimeBetweenCond)
	VisitMonthBetween(*MonthBetweenCond)
	VisitDateBetween(*DateBetweenCond)
	VisitDayBetween(*DayBetweenCond)
	VisitDayPart(*DayPartCond)
	VisitWeekDay(*WeekDayCond)
	VisitTimeSpan(*TimeSpanCond)
	VisitOr(*OrCond)
	VisitAnd(*AndCond)
	VisitNth(*NthCond)
	VisitFirstAfterStart(*FirstAfterStartCond)
}

// contains implements the universal law C.Contains(t) <=>
// t falls within C.LastActiveRange(t), shared by every variant.
func contains(c Condition, t time.Time) bool {
	r, ok := c.LastActiveRange(t)
	if !ok {
		return false
	}
	return r.Contains(t)
}

// nextStart implements C.NextStart(t) = C.NextRanges(t).FirstStart(),
// shared by every variant.
func nextStart(c Condition, t time.Time) (time.Time, bool) {
	return c.NextRanges(t).FirstStart()
}

// currentEnd implements C.CurrentEnd(t) in terms of LastActiveRange,
// shared by every variant. An open-ended last-active range has no
// concrete end instant to report, so it also yields none.
func currentEnd(c Condition, t time.Time) (time.Time, bool) {
	r, ok := c.LastActiveRange(t)
	if !ok || r.End == nil {
		return time.Time{}, false
	}
	return *r.End, true
}
