package timecond

import "time"

// TimeBetweenCond represents a daily time-of-day band. If Inclusive is
// false, the authored End minute is excluded from the band (the
// internal form shifts it one minute earlier, wrapping the hour if
// necessary) before the half-open range is built. Start may be
// numerically after End, denoting an overnight band that wraps past
// midnight.
type TimeBetweenCond struct {
	Start     DayTime
	End       DayTime
	Inclusive bool

	lengthMin int // derived: length of the daily band, in minutes
}

// NewTimeBetweenCond builds a TimeBetweenCond. End.Hour may be 24
// (meaning end-of-day) only when Inclusive is false, matching the
// day-part table convention described in spec.md §4.3.
func NewTimeBetweenCond(start, end DayTime, inclusive bool) (*TimeBetweenCond, error) {
	if err := start.validate(false); err != nil {
		return nil, err
	}
	if err := end.validate(!inclusive); err != nil {
		return nil, err
	}

	effectiveEnd := end
	if !inclusive {
		effectiveEnd = dayTimeFromMinutes(end.minutes() - 1)
	}

	lengthMin := (effectiveEnd.minutes() + 1) - start.minutes()
	if lengthMin <= 0 {
		lengthMin += 1440
	}

	return &TimeBetweenCond{
		Start:     start,
		End:       end,
		Inclusive: inclusive,
		lengthMin: lengthMin,
	}, nil
}

func (c *TimeBetweenCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *TimeBetweenCond) LastActiveRange(t time.Time) (DateRange, bool) {
	todayStart := StartOfDay(t).Add(c.Start.Duration())
	anchor := todayStart
	if t.Before(todayStart) {
		anchor = AddDays(todayStart, -1)
	}
	end := anchor.Add(time.Duration(c.lengthMin) * time.Minute)
	return NewRange(anchor, end), true
}

func (c *TimeBetweenCond) NextRanges(t time.Time) RangeSet {
	todayStart := StartOfDay(t).Add(c.Start.Duration())
	anchor := todayStart
	if !t.Before(todayStart) {
		anchor = AddDays(todayStart, 1)
	}
	end := anchor.Add(time.Duration(c.lengthMin) * time.Minute)
	return NewRangeSet([]DateRange{NewRange(anchor, end)})
}

func (c *TimeBetweenCond) NextStart(t time.Time) (time.Time, bool) { return nextStart(c, t) }
func (c *TimeBetweenCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *TimeBetweenCond) Accept(v Visitor)                         { v.VisitTimeBetween(c) }
