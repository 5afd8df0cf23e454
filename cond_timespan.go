package timecond

import "time"

// TimeSpanCond is a bucketed duration: months, days, hours, minutes,
// and seconds, used as the B-side of FirstAfterStartCond. At least one
// component must be positive; none may be negative.
type TimeSpanCond struct {
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// NewTimeSpanCond builds a TimeSpanCond.
func NewTimeSpanCond(months, days, hours, minutes, seconds int) (*TimeSpanCond, error) {
	if months < 0 || days < 0 || hours < 0 || minutes < 0 || seconds < 0 {
		return nil, invalidDurationf("negative component in time span")
	}
	if months == 0 && days == 0 && hours == 0 && minutes == 0 && seconds == 0 {
		return nil, invalidDurationf("time span has no positive component")
	}
	return &TimeSpanCond{Months: months, Days: days, Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// floor returns t truncated to the granularity implied by the smallest
// non-zero component of c.
func (c *TimeSpanCond) floor(t time.Time) time.Time {
	switch {
	case c.Seconds > 0:
		return t.Truncate(time.Second)
	case c.Minutes > 0:
		return t.Truncate(time.Minute)
	case c.Hours > 0:
		return t.Truncate(time.Hour)
	case c.Days > 0:
		return StartOfDay(t)
	default:
		y, m, _ := t.Date()
		return DateAt(y, m, 1, t.Location())
	}
}

// advance moves anchor forward by one unit of the same granularity
// used by floor.
func (c *TimeSpanCond) advance(anchor time.Time) time.Time {
	switch {
	case c.Seconds > 0:
		return anchor.Add(time.Second)
	case c.Minutes > 0:
		return anchor.Add(time.Minute)
	case c.Hours > 0:
		return anchor.Add(time.Hour)
	case c.Days > 0:
		return AddDays(anchor, 1)
	default:
		return AddMonths(anchor, 1)
	}
}

// span adds the declared duration to anchor, months and days first
// (calendar arithmetic), then the clock components.
func (c *TimeSpanCond) span(anchor time.Time) time.Time {
	end := AddMonths(anchor, c.Months)
	end = AddDays(end, c.Days)
	end = end.Add(time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second)
	return end
}

func (c *TimeSpanCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *TimeSpanCond) LastActiveRange(t time.Time) (DateRange, bool) {
	anchor := c.floor(t)
	return NewRange(anchor, c.span(anchor)), true
}

func (c *TimeSpanCond) NextRanges(t time.Time) RangeSet {
	anchor := c.advance(c.floor(t))
	return NewRangeSet([]DateRange{NewRange(anchor, c.span(anchor))})
}

func (c *TimeSpanCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *TimeSpanCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *TimeSpanCond) Accept(v Visitor)                         { v.VisitTimeSpan(c) }
