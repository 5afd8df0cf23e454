package timecond

import (
	"fmt"
	"time"
)

const dateRangeFmt = "2006-01-02T15:04:05.000"

// DateRange is a half-open interval [Start, End). End is nil for an
// open-ended range (absorbing all later time), in which case the
// range is interpreted as [Start, +∞).
//
// Invariant: if End is non-nil, Start.Before(*End).
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// NewOpenRange returns the open-ended range [start, +∞).
func NewOpenRange(start time.Time) DateRange {
	return DateRange{Start: start}
}

// NewRange returns the closed range [start, end). Panics if end is
// not strictly after start — callers constructing ranges from trusted
// arithmetic should never hit this; callers validating user input
// should check first.
func NewRange(start, end time.Time) DateRange {
	if !start.Before(end) {
		panic("timecond: range end must be strictly after start")
	}
	return DateRange{Start: start, End: &end}
}

// HasEnd reports whether r is bounded.
func (r DateRange) HasEnd() bool { return r.End != nil }

// Contains reports whether t falls within [r.Start, r.End).
func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	return r.End == nil || t.Before(*r.End)
}

// Equal reports whether r and other denote the same interval.
func (r DateRange) Equal(other DateRange) bool {
	if !r.Start.Equal(other.Start) {
		return false
	}
	if (r.End == nil) != (other.End == nil) {
		return false
	}
	return r.End == nil || r.End.Equal(*other.End)
}

// Duration returns the length of a bounded range. It panics for an
// open-ended range — callers must check HasEnd first.
func (r DateRange) Duration() time.Duration {
	if r.End == nil {
		panic("timecond: Duration of an open-ended range")
	}
	return r.End.Sub(r.Start)
}

// Clone returns a deep copy of r, so that mutating the returned
// range's End pointer never aliases r's.
func (r DateRange) Clone() DateRange {
	if r.End == nil {
		return DateRange{Start: r.Start}
	}
	end := *r.End
	return DateRange{Start: r.Start, End: &end}
}

// String implements fmt.Stringer.
func (r DateRange) String() string {
	if r.End == nil {
		return fmt.Sprintf("[%s, +inf)", r.Start.Format(dateRangeFmt))
	}
	return fmt.Sprintf("[%s, %s)", r.Start.Format(dateRangeFmt), r.End.Format(dateRangeFmt))
}
