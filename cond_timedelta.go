package timecond

import "time"

// TimeDeltaCond is satisfied once at least Delta has elapsed since
// Anchor, and remains satisfied forever after. It caches its
// reference instant (Anchor) at construction, per spec.md §3.
type TimeDeltaCond struct {
	Anchor time.Time
	Delta  time.Duration
}

// NewTimeDeltaCond builds a TimeDeltaCond. Delta must be strictly
// positive.
func NewTimeDeltaCond(anchor time.Time, delta time.Duration) (*TimeDeltaCond, error) {
	if delta <= 0 {
		return nil, invalidDurationf("delta %s must be positive", delta)
	}
	return &TimeDeltaCond{Anchor: anchor, Delta: delta}, nil
}

// ValidFrom returns Anchor+Delta, the instant from which the
// condition is permanently satisfied.
func (c *TimeDeltaCond) ValidFrom() time.Time {
	return c.Anchor.Add(c.Delta)
}

func (c *TimeDeltaCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *TimeDeltaCond) LastActiveRange(t time.Time) (DateRange, bool) {
	validFrom := c.ValidFrom()
	if t.Before(validFrom) {
		return DateRange{}, false
	}
	return NewOpenRange(validFrom), true
}

func (c *TimeDeltaCond) NextRanges(t time.Time) RangeSet {
	validFrom := c.ValidFrom()
	if !t.Before(validFrom) {
		return RangeSet{}
	}
	return NewRangeSet([]DateRange{NewOpenRange(validFrom)})
}

func (c *TimeDeltaCond) NextStart(t time.Time) (time.Time, bool) { return nextStart(c, t) }
func (c *TimeDeltaCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *TimeDeltaCond) Accept(v Visitor)                         { v.VisitTimeDelta(c) }
