package timecond

import "time"

// MonthBetweenCond represents a yearly band of whole months,
// [StartMonth, EndMonth]. StartMonth may be numerically after
// EndMonth, denoting a band that wraps across the year boundary.
type MonthBetweenCond struct {
	StartMonth time.Month
	EndMonth   time.Month

	wrap bool
}

// NewMonthBetweenCond builds a MonthBetweenCond.
func NewMonthBetweenCond(start, end time.Month) (*MonthBetweenCond, error) {
	if start < time.January || start > time.December {
		return nil, invalidRangef("start month %d out of range", int(start))
	}
	if end < time.January || end > time.December {
		return nil, invalidRangef("end month %d out of range", int(end))
	}
	return &MonthBetweenCond{StartMonth: start, EndMonth: end, wrap: start > end}, nil
}

func (c *MonthBetweenCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *MonthBetweenCond) LastActiveRange(t time.Time) (DateRange, bool) {
	year := t.Year()
	var startDate time.Time
	if t.Month() >= c.StartMonth {
		startDate = DateAt(year, c.StartMonth, 1, t.Location())
	} else {
		startDate = DateAt(year-1, c.StartMonth, 1, t.Location())
	}
	endYear := startDate.Year()
	if c.wrap {
		endYear++
	}
	endDate := DateAt(endYear, c.EndMonth+1, 1, t.Location())
	return NewRange(startDate, endDate), true
}

func (c *MonthBetweenCond) NextRanges(t time.Time) RangeSet {
	year := t.Year()
	var startDate time.Time
	if t.Month() >= c.StartMonth {
		startDate = DateAt(year+1, c.StartMonth, 1, t.Location())
	} else {
		startDate = DateAt(year, c.StartMonth, 1, t.Location())
	}
	endYear := startDate.Year()
	if c.wrap {
		endYear++
	}
	endDate := DateAt(endYear, c.EndMonth+1, 1, t.Location())
	return NewRangeSet([]DateRange{NewRange(startDate, endDate)})
}

func (c *MonthBetweenCond) NextStart(t time.Time) (time.Time, bool) { return nextStart(c, t) }
func (c *MonthBetweenCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *MonthBetweenCond) Accept(v Visitor)                         { v.VisitMonthBetween(c) }
