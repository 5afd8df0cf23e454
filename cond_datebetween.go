package timecond

import "time"

// DateBetweenCond represents a yearly band between two specific
// calendar dates, [Start, End], inclusive of End in user intent. Start
// may denote a later point in the yearless calendar than End, denoting
// a band that wraps across the year boundary.
type DateBetweenCond struct {
	Start MonthDay
	End   MonthDay

	wrap bool
}

// NewDateBetweenCond builds a DateBetweenCond.
func NewDateBetweenCond(start, end MonthDay) (*DateBetweenCond, error) {
	if err := start.validate(); err != nil {
		return nil, err
	}
	if err := end.validate(); err != nil {
		return nil, err
	}
	return &DateBetweenCond{Start: start, End: end, wrap: end.before(start)}, nil
}

func (c *DateBetweenCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *DateBetweenCond) LastActiveRange(t time.Time) (DateRange, bool) {
	cur := MonthDay{Month: t.Month(), Day: t.Day()}
	year := t.Year()
	var startYear int
	if cur.atOrAfter(c.Start) {
		startYear = year
	} else {
		startYear = year - 1
	}
	startDate := DateAt(startYear, c.Start.Month, c.Start.Day, t.Location())
	endYear := startYear
	if c.wrap {
		endYear++
	}
	endDate := DateAt(endYear, c.End.Month, c.End.Day+1, t.Location())
	return NewRange(startDate, endDate), true
}

func (c *DateBetweenCond) NextRanges(t time.Time) RangeSet {
	cur := MonthDay{Month: t.Month(), Day: t.Day()}
	year := t.Year()
	var startYear int
	if cur.atOrAfter(c.Start) {
		startYear = year + 1
	} else {
		startYear = year
	}
	startDate := DateAt(startYear, c.Start.Month, c.Start.Day, t.Location())
	endYear := startYear
	if c.wrap {
		endYear++
	}
	endDate := DateAt(endYear, c.End.Month, c.End.Day+1, t.Location())
	return NewRangeSet([]DateRange{NewRange(startDate, endDate)})
}

func (c *DateBetweenCond) NextStart(t time.Time) (time.Time, bool) { return nextStart(c, t) }
func (c *DateBetweenCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *DateBetweenCond) Accept(v Visitor)                         { v.VisitDateBetween(c) }
