package timecond

import "time"

// epsilonTick is the smallest step used to probe "just before" an
// instant when walking a child condition's occurrences.
const epsilonTick = time.Nanosecond

// AndCond is satisfied only when every child is simultaneously
// satisfied.
type AndCond struct {
	Children []Condition
}

// NewAndCond builds an AndCond over one or more children.
func NewAndCond(children ...Condition) (*AndCond, error) {
	if len(children) == 0 {
		return nil, emptyCombinatorf("and requires at least one child")
	}
	return &AndCond{Children: children}, nil
}

func (c *AndCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *AndCond) LastActiveRange(t time.Time) (DateRange, bool) {
	survivors := c.envelope(t, false)
	if len(survivors) == 0 {
		return DateRange{}, false
	}
	return survivors[len(survivors)-1], true
}

func (c *AndCond) NextRanges(t time.Time) RangeSet {
	return NewRangeSet(c.envelope(t, true))
}

func (c *AndCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *AndCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *AndCond) Accept(v Visitor)                         { v.VisitAnd(c) }

// envelope implements the envelope-expansion algorithm shared by
// LastActiveRange and NextRanges: every child's occurrences within the
// window spanned by the children's initial ranges at t are enumerated
// and intersected, then filtered to the side of t appropriate for
// wantNext.
func (c *AndCond) envelope(t time.Time, wantNext bool) []DateRange {
	var starts []time.Time
	var ends []*time.Time
	for _, child := range c.Children {
		r, ok := c.initialRange(child, t, wantNext)
		if !ok {
			continue
		}
		starts = append(starts, r.Start)
		ends = append(ends, r.End)
	}
	if len(starts) == 0 {
		return nil
	}

	earliestStart := starts[0]
	for _, s := range starts[1:] {
		if s.Before(earliestStart) {
			earliestStart = s
		}
	}

	var latestEnd *time.Time
	open := false
	for _, e := range ends {
		if e == nil {
			open = true
			continue
		}
		if !open && (latestEnd == nil || e.After(*latestEnd)) {
			latestEnd = e
		}
	}
	if open {
		latestEnd = nil
	}

	// Refine earliestStart against children whose period began earlier
	// than t's own, so the envelope doesn't miss their current occurrence.
	for _, child := range c.Children {
		if r, ok := child.LastActiveRange(earliestStart); ok && r.Start.Before(earliestStart) {
			earliestStart = r.Start
		}
	}

	bound := t
	if latestEnd != nil {
		bound = *latestEnd
	}

	envRange := NewOpenRange(earliestStart)
	if latestEnd != nil {
		envRange = NewRange(earliestStart, *latestEnd)
	}

	running := NewRangeSet([]DateRange{envRange})
	for _, child := range c.Children {
		running = running.Intersection(c.childUnionWithinEnvelope(child, earliestStart, bound))
	}

	var survivors []DateRange
	for _, r := range running.Ranges() {
		if wantNext == r.Start.After(t) {
			survivors = append(survivors, r)
		}
	}
	return survivors
}

func (c *AndCond) initialRange(child Condition, t time.Time, wantNext bool) (DateRange, bool) {
	if wantNext {
		return child.NextRanges(t).First()
	}
	return child.LastActiveRange(t)
}

// childUnionWithinEnvelope returns the union of child's occurrences
// overlapping [envStart, bound], built by walking next_ranges forward
// from the occurrence active just before envStart.
func (c *AndCond) childUnionWithinEnvelope(child Condition, envStart, bound time.Time) RangeSet {
	var all []DateRange
	frontier := envStart.Add(-epsilonTick)
	frontierOpen := false

	if cur, ok := child.LastActiveRange(frontier); ok {
		all = append(all, cur)
		if cur.HasEnd() {
			frontier = *cur.End
		} else {
			frontierOpen = true
		}
	}

	for !frontierOpen && frontier.Before(bound) {
		ranges := child.NextRanges(frontier).Ranges()
		if len(ranges) == 0 {
			break
		}
		all = append(all, ranges...)

		last := ranges[len(ranges)-1]
		if !last.HasEnd() {
			frontierOpen = true
			break
		}
		if !last.End.After(frontier) {
			break
		}
		frontier = *last.End
	}

	return NewRangeSet(all)
}
