package timecond

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MonthDay is a calendar date without a year: a month and a day of
// month. Month re-uses Go's own time.Month (1-based, time.January
// .. time.December) rather than a raw 0-based index — the idiomatic
// representation the standard library itself uses. Callers translating
// from a 0-based external representation add one at the boundary.
type MonthDay struct {
	Month time.Month
	Day   int
}

// String implements fmt.Stringer.
func (m MonthDay) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Day)
}

// validate checks that Month is in [1,12] and Day is in [1,31]. No
// per-month day validation is performed — invalid days (e.g. Feb 30)
// degrade through calendar normalisation when turned into an instant,
// per spec.md §3.
func (m MonthDay) validate() error {
	if m.Month < time.January || m.Month > time.December {
		return invalidRangef("month %d out of range", int(m.Month))
	}
	if m.Day < 1 || m.Day > 31 {
		return invalidRangef("day %d out of range", m.Day)
	}
	return nil
}

// before reports whether m denotes an earlier point in the yearless
// calendar than other (month first, then day).
func (m MonthDay) before(other MonthDay) bool {
	if m.Month != other.Month {
		return m.Month < other.Month
	}
	return m.Day < other.Day
}

// atOrAfter reports whether m denotes the same or a later point in
// the yearless calendar than other.
func (m MonthDay) atOrAfter(other MonthDay) bool {
	return !m.before(other)
}

// Equal reports whether m and other denote the same month and day.
func (m MonthDay) Equal(other MonthDay) bool {
	return m.Month == other.Month && m.Day == other.Day
}

// type check
var _ yaml.Unmarshaler = (*MonthDay)(nil)

// UnmarshalYAML implements yaml.Unmarshaler, decoding an "MM-DD" scalar.
func (m *MonthDay) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.Parse("01-02", s)
	if err != nil {
		return invalidRangef("month day %q: %s", s, err)
	}
	*m = MonthDay{Month: parsed.Month(), Day: parsed.Day()}
	return nil
}
