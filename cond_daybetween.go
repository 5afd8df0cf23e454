package timecond

import "time"

// DayBetweenCond represents a monthly band of days-of-month,
// [StartDay, EndDay]. StartDay may be numerically after EndDay,
// denoting a band that wraps across the month boundary.
type DayBetweenCond struct {
	StartDay int
	EndDay   int

	wrap bool
}

// NewDayBetweenCond builds a DayBetweenCond.
func NewDayBetweenCond(startDay, endDay int) (*DayBetweenCond, error) {
	if startDay < 1 || startDay > 31 {
		return nil, invalidRangef("start day %d out of range", startDay)
	}
	if endDay < 1 || endDay > 31 {
		return nil, invalidRangef("end day %d out of range", endDay)
	}
	return &DayBetweenCond{StartDay: startDay, EndDay: endDay, wrap: startDay > endDay}, nil
}

func (c *DayBetweenCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *DayBetweenCond) LastActiveRange(t time.Time) (DateRange, bool) {
	year, month, _ := t.Date()
	var startDate time.Time
	if t.Day() >= c.StartDay {
		startDate = DateAt(year, month, c.StartDay, t.Location())
	} else {
		startDate = DateAt(year, month-1, c.StartDay, t.Location())
	}
	endMonth := startDate.Month()
	endYear := startDate.Year()
	if c.wrap {
		endMonth++
	}
	endDate := DateAt(endYear, endMonth, c.EndDay+1, t.Location())
	return NewRange(startDate, endDate), true
}

func (c *DayBetweenCond) NextRanges(t time.Time) RangeSet {
	year, month, _ := t.Date()
	var startDate time.Time
	if t.Day() >= c.StartDay {
		startDate = DateAt(year, month+1, c.StartDay, t.Location())
	} else {
		startDate = DateAt(year, month, c.StartDay, t.Location())
	}
	endMonth := startDate.Month()
	endYear := startDate.Year()
	if c.wrap {
		endMonth++
	}
	endDate := DateAt(endYear, endMonth, c.EndDay+1, t.Location())
	return NewRangeSet([]DateRange{NewRange(startDate, endDate)})
}

func (c *DayBetweenCond) NextStart(t time.Time) (time.Time, bool) { return nextStart(c, t) }
func (c *DayBetweenCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *DayBetweenCond) Accept(v Visitor)                         { v.VisitDayBetween(c) }
