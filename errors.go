package timecond

import "github.com/pkg/errors"

// Sentinel error kinds. Construction failures wrap one of these with
// call-site context via errors.Wrapf, so callers can still match the
// kind with errors.Is.
var (
	// ErrInvalidRange reports a numeric field outside its legal band:
	// month outside 0-11 (1-12 in time.Month form), day outside 1-31,
	// weekday outside 0-6, an AM/PM hour above 12, or a bare hour above 23.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidDuration reports a negative duration component, or a
	// TimeSpanCond with every component zero.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrEmptyCombinator reports an OrCond/AndCond built with no children.
	ErrEmptyCombinator = errors.New("empty combinator")

	// ErrUnknownName reports a factory lookup failure (weekday/day-part/
	// season name not present in the Config).
	ErrUnknownName = errors.New("unknown name")
)

func invalidRangef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidRange, format, args...)
}

func invalidDurationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidDuration, format, args...)
}

func emptyCombinatorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrEmptyCombinator, format, args...)
}

func unknownNamef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnknownName, format, args...)
}
