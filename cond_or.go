package timecond

import "time"

// OrCond is satisfied whenever any of its children is.
type OrCond struct {
	Children []Condition
}

// NewOrCond builds an OrCond over one or more children.
func NewOrCond(children ...Condition) (*OrCond, error) {
	if len(children) == 0 {
		return nil, emptyCombinatorf("or requires at least one child")
	}
	return &OrCond{Children: children}, nil
}

func (c *OrCond) Contains(t time.Time) bool { return contains(c, t) }

func (c *OrCond) LastActiveRange(t time.Time) (DateRange, bool) {
	var ranges []DateRange
	for _, child := range c.Children {
		if r, ok := child.LastActiveRange(t); ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return DateRange{}, false
	}
	return NewRangeSet(ranges).Last()
}

func (c *OrCond) NextRanges(t time.Time) RangeSet {
	var ranges []DateRange
	for _, child := range c.Children {
		ranges = append(ranges, child.NextRanges(t).Ranges()...)
	}
	return NewRangeSet(ranges)
}

func (c *OrCond) NextStart(t time.Time) (time.Time, bool)  { return nextStart(c, t) }
func (c *OrCond) CurrentEnd(t time.Time) (time.Time, bool) { return currentEnd(c, t) }
func (c *OrCond) Accept(v Visitor)                         { v.VisitOr(c) }
