package timecond

import "time"

// msTick is the shift used to turn an at-or-after comparison into a
// call against NextRanges, which only ever returns starts strictly
// after the instant it's given.
const msTick = time.Millisecond

// FirstAfterStartCond represents the first occurrence of B whose
// start is at-or-after the start of A.
type FirstAfterStartCond struct {
	A         Condition
	B         Condition
	Inclusive bool
}

// NewFirstAfterStartCond builds a FirstAfterStartCond.
func NewFirstAfterStartCond(a, b Condition, inclusive bool) (*FirstAfterStartCond, error) {
	return &FirstAfterStartCond{A: a, B: b, Inclusive: inclusive}, nil
}

func (c *FirstAfterStartCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *FirstAfterStartCond) LastActiveRange(t time.Time) (DateRange, bool) {
	bRange, ok := c.B.LastActiveRange(t)
	if !ok {
		return DateRange{}, false
	}

	var aStart time.Time
	if !c.Inclusive {
		aRange, ok := c.A.LastActiveRange(bRange.Start.Add(-msTick))
		if !ok {
			return DateRange{}, false
		}
		aStart = aRange.Start
	} else {
		aRange, ok := c.A.LastActiveRange(bRange.Start)
		if !ok {
			return DateRange{}, false
		}
		aStart = aRange.Start.Add(-msTick)
	}

	return c.B.NextRanges(aStart).First()
}

func (c *FirstAfterStartCond) NextRanges(t time.Time) RangeSet {
	if aRange, ok := c.A.LastActiveRange(t); ok && aRange.Contains(t) {
		if r, ok := c.firstBAfter(aRange.Start); ok && r.Start.After(t) {
			return NewRangeSet([]DateRange{r})
		}
	}

	from := t
	for {
		aRange, ok := c.A.NextRanges(from).First()
		if !ok {
			return NewRangeSet(nil)
		}
		if r, ok := c.firstBAfter(aRange.Start); ok && r.Start.After(t) {
			return NewRangeSet([]DateRange{r})
		}
		from = aRange.Start
	}
}

// firstBAfter finds B's first occurrence at-or-after aStart, shifting
// by msTick when Inclusive so an occurrence starting exactly at aStart
// still counts against NextRanges' strict-after semantics.
func (c *FirstAfterStartCond) firstBAfter(aStart time.Time) (DateRange, bool) {
	from := aStart
	if c.Inclusive {
		from = from.Add(-msTick)
	}
	return c.B.NextRanges(from).First()
}

func (c *FirstAfterStartCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *FirstAfterStartCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *FirstAfterStartCond) Accept(v Visitor)                         { v.VisitFirstAfterStart(c) }
