package timecond

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DayTime is a time of day at minute resolution. Hour 24 is permitted
// only for day-part table end values, meaning end-of-day; everywhere
// else Hour must be in [0,23].
type DayTime struct {
	Hour   int
	Minute int
}

// String implements fmt.Stringer.
func (d DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

// Duration returns the offset from the start of the day that d denotes.
func (d DayTime) Duration() time.Duration {
	return time.Duration(d.Hour)*time.Hour + time.Duration(d.Minute)*time.Minute
}

// minutes returns d as an offset in minutes from midnight.
func (d DayTime) minutes() int {
	return d.Hour*60 + d.Minute
}

// dayTimeFromMinutes rebuilds a DayTime from a minute offset, wrapping
// modulo a day.
func dayTimeFromMinutes(m int) DayTime {
	m = ((m % 1440) + 1440) % 1440
	return DayTime{Hour: m / 60, Minute: m % 60}
}

// validate checks the DayTime's bounds. allowEndOfDay permits the
// Hour=24,Minute=0 sentinel used by day-part table end values.
func (d DayTime) validate(allowEndOfDay bool) error {
	if allowEndOfDay && d.Hour == 24 && d.Minute == 0 {
		return nil
	}
	if d.Hour < 0 || d.Hour > 23 {
		return invalidRangef("hour %d out of range", d.Hour)
	}
	if d.Minute < 0 || d.Minute > 59 {
		return invalidRangef("minute %d out of range", d.Minute)
	}
	return nil
}

// Equal reports whether d and other denote the same time of day.
func (d DayTime) Equal(other DayTime) bool {
	return d.Hour == other.Hour && d.Minute == other.Minute
}

// type check
var _ yaml.Unmarshaler = (*DayTime)(nil)

// UnmarshalYAML implements yaml.Unmarshaler, decoding an "HH:MM" scalar.
// "24:00" decodes to the end-of-day value; callers validate where it
// is allowed.
func (d *DayTime) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "24:00" {
		*d = DayTime{Hour: 24}
		return nil
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return invalidRangef("day time %q: %s", s, err)
	}
	*d = DayTime{Hour: parsed.Hour(), Minute: parsed.Minute()}
	return nil
}
