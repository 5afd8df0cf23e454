package timecond

import "time"

// WeekDayCond represents a single day of the week, recurring weekly.
// N follows time.Weekday's own numbering (0 = Sunday .. 6 = Saturday).
type WeekDayCond struct {
	N time.Weekday
}

// NewWeekDayCond builds a WeekDayCond.
func NewWeekDayCond(n time.Weekday) (*WeekDayCond, error) {
	if n < time.Sunday || n > time.Saturday {
		return nil, invalidRangef("weekday %d out of range", int(n))
	}
	return &WeekDayCond{N: n}, nil
}

func (c *WeekDayCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *WeekDayCond) LastActiveRange(t time.Time) (DateRange, bool) {
	d := (WeekdayIndex(t) - int(c.N) + 7) % 7
	start := StartOfDay(AddDays(t, -d))
	return NewRange(start, AddDays(start, 1)), true
}

func (c *WeekDayCond) NextRanges(t time.Time) RangeSet {
	d := int(c.N) - WeekdayIndex(t)
	if d <= 0 {
		d += 7
	}
	start := StartOfDay(AddDays(t, d))
	return NewRangeSet([]DateRange{NewRange(start, AddDays(start, 1))})
}

func (c *WeekDayCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *WeekDayCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *WeekDayCond) Accept(v Visitor)                         { v.VisitWeekDay(c) }
