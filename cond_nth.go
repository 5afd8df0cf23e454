package timecond

import "time"

// NthCond takes the n-th occurrence of Child at or after Anchor.
type NthCond struct {
	Anchor time.Time
	N      int
	Child  Condition
}

// NewNthCond builds an NthCond. N must be at least 1.
func NewNthCond(anchor time.Time, n int, child Condition) (*NthCond, error) {
	if n < 1 {
		return nil, invalidRangef("nth occurrence %d must be at least 1", n)
	}
	return &NthCond{Anchor: anchor, N: n, Child: child}, nil
}

func (c *NthCond) Contains(t time.Time) bool { return contains(c, t) }

// occurrenceFrom seeks the n-th occurrence of Child starting the
// search at from: the first call finds the 1st occurrence after from,
// then each subsequent occurrence is sought from the previous one's
// end. Returns false if Child exhausts (an occurrence lacks an end)
// before the n-th is reached.
func (c *NthCond) occurrenceFrom(from time.Time) (DateRange, bool) {
	cur := from
	var r DateRange
	for i := 0; i < c.N; i++ {
		next, ok := c.Child.NextRanges(cur).First()
		if !ok {
			return DateRange{}, false
		}
		r = next
		if i < c.N-1 {
			if !r.HasEnd() {
				return DateRange{}, false
			}
			cur = *r.End
		}
	}
	return r, true
}

func (c *NthCond) LastActiveRange(t time.Time) (DateRange, bool) {
	from := c.Anchor
	var last DateRange
	found := false
	for {
		cand, ok := c.occurrenceFrom(from)
		if !ok || cand.Start.After(t) {
			break
		}
		last, found = cand, true
		if !cand.HasEnd() {
			break
		}
		from = *cand.End
	}
	return last, found
}

func (c *NthCond) NextRanges(t time.Time) RangeSet {
	from := c.Anchor
	for {
		cand, ok := c.occurrenceFrom(from)
		if !ok {
			return NewRangeSet(nil)
		}
		if cand.Start.After(t) {
			return NewRangeSet([]DateRange{cand})
		}
		if !cand.HasEnd() {
			return NewRangeSet(nil)
		}
		from = *cand.End
	}
}

func (c *NthCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *NthCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *NthCond) Accept(v Visitor)                         { v.VisitNth(c) }
