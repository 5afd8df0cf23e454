package timecond

// DayPartCond names a TimeBetweenCond band after one of the day-part
// labels in spec.md §4.3 (e.g. "morning", "afternoon"), so that
// visitors and formatting can recover the intent behind the band
// instead of seeing only raw hours and minutes.
type DayPartCond struct {
	*TimeBetweenCond
	Name string
}

// NewDayPartCond builds a DayPartCond wrapping the given band.
func NewDayPartCond(name string, start, end DayTime, inclusive bool) (*DayPartCond, error) {
	tb, err := NewTimeBetweenCond(start, end, inclusive)
	if err != nil {
		return nil, err
	}
	return &DayPartCond{TimeBetweenCond: tb, Name: name}, nil
}

// Accept dispatches as a DayPartCond rather than the embedded
// TimeBetweenCond, so visitors see the named day part.
func (c *DayPartCond) Accept(v Visitor) { v.VisitDayPart(c) }
