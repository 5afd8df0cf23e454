package timecond

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DayTimeRange names a daily time-of-day band, as consulted by the
// day_part factory.
type DayTimeRange struct {
	Start DayTime
	End   DayTime
}

// MonthDayRange names a yearly calendar-date band, as consulted by the
// season factory. Its months are 1-based, matching time.Month; callers
// translating into DateBetweenCond do so directly (MonthDay already
// uses time.Month).
type MonthDayRange struct {
	Start MonthDay
	End   MonthDay
}

// SeasonWindow gives the northern- and southern-hemisphere variants of
// a named season.
type SeasonWindow struct {
	Northern MonthDayRange
	Southern MonthDayRange
}

// Config is the locale/calendar record the factory consults. It is
// immutable once built and safe to share across goroutines.
type Config struct {
	WeekStartsOnMonday bool
	SouthernHemisphere bool

	DayNames        [7]string
	MonthNames      [12]string
	ShortMonthNames [12]string

	DayParts       map[string]DayTimeRange
	Seasons        map[string]SeasonWindow
	WeekdayNumbers map[string]time.Weekday
}

// configYAML is the YAML wire shape of Config. Kept separate from
// Config itself so that decoding can validate before committing,
// mirroring the shadow-struct-then-swap pattern used for schedule
// records elsewhere in the ecosystem.
type configYAML struct {
	WeekStartsOnMonday bool `yaml:"week_starts_on_monday"`
	SouthernHemisphere bool `yaml:"southern_hemisphere"`

	DayNames        [7]string  `yaml:"day_names"`
	MonthNames      [12]string `yaml:"month_names"`
	ShortMonthNames [12]string `yaml:"short_month_names"`

	DayParts map[string]struct {
		Start DayTime `yaml:"start"`
		End   DayTime `yaml:"end"`
	} `yaml:"day_parts"`

	Seasons map[string]struct {
		Northern struct {
			Start MonthDay `yaml:"start"`
			End   MonthDay `yaml:"end"`
		} `yaml:"northern"`
		Southern struct {
			Start MonthDay `yaml:"start"`
			End   MonthDay `yaml:"end"`
		} `yaml:"southern"`
	} `yaml:"seasons"`

	WeekdayNumbers map[string]int `yaml:"weekday_numbers"`
}

// type check
var _ yaml.Unmarshaler = (*Config)(nil)

// UnmarshalYAML implements yaml.Unmarshaler: it decodes into a shadow
// struct, validates every table, then swaps the result into the
// receiver, following the same decode-validate-swap shape as the
// configuration records it's grounded on.
func (cfg *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw configYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	built := Config{
		WeekStartsOnMonday: raw.WeekStartsOnMonday,
		SouthernHemisphere: raw.SouthernHemisphere,
		DayNames:           raw.DayNames,
		MonthNames:         raw.MonthNames,
		ShortMonthNames:    raw.ShortMonthNames,
		DayParts:           make(map[string]DayTimeRange, len(raw.DayParts)),
		Seasons:            make(map[string]SeasonWindow, len(raw.Seasons)),
		WeekdayNumbers:     make(map[string]time.Weekday, len(raw.WeekdayNumbers)),
	}

	for name, dp := range raw.DayParts {
		if err := dp.Start.validate(false); err != nil {
			return errors.Wrapf(err, "day part %q start", name)
		}
		if err := dp.End.validate(true); err != nil {
			return errors.Wrapf(err, "day part %q end", name)
		}
		built.DayParts[name] = DayTimeRange{Start: dp.Start, End: dp.End}
	}

	for name, s := range raw.Seasons {
		if err := s.Northern.Start.validate(); err != nil {
			return errors.Wrapf(err, "season %q northern start", name)
		}
		if err := s.Northern.End.validate(); err != nil {
			return errors.Wrapf(err, "season %q northern end", name)
		}
		if err := s.Southern.Start.validate(); err != nil {
			return errors.Wrapf(err, "season %q southern start", name)
		}
		if err := s.Southern.End.validate(); err != nil {
			return errors.Wrapf(err, "season %q southern end", name)
		}
		built.Seasons[name] = SeasonWindow{
			Northern: MonthDayRange{Start: s.Northern.Start, End: s.Northern.End},
			Southern: MonthDayRange{Start: s.Southern.Start, End: s.Southern.End},
		}
	}

	for name, n := range raw.WeekdayNumbers {
		if n < 0 || n > 6 {
			return invalidRangef("weekday number %q=%d out of range", name, n)
		}
		built.WeekdayNumbers[strings.ToLower(name)] = time.Weekday(n)
	}

	*cfg = built
	return nil
}

// DecodeYAML reads a Config from r, validating every table before
// returning it.
func DecodeYAML(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

// DefaultConfig returns the English/northern-hemisphere/Monday-start
// locale baked into the package, for callers with no locale file of
// their own.
func DefaultConfig() *Config {
	return &Config{
		WeekStartsOnMonday: true,
		SouthernHemisphere: false,
		DayNames: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		ShortMonthNames: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		DayParts: map[string]DayTimeRange{
			"morning":   {Start: DayTime{Hour: 6}, End: DayTime{Hour: 12}},
			"afternoon": {Start: DayTime{Hour: 12}, End: DayTime{Hour: 18}},
			"evening":   {Start: DayTime{Hour: 18}, End: DayTime{Hour: 22}},
			"night":     {Start: DayTime{Hour: 22}, End: DayTime{Hour: 24}},
		},
		Seasons: map[string]SeasonWindow{
			"winter": {
				Northern: MonthDayRange{Start: MonthDay{Month: time.December, Day: 1}, End: MonthDay{Month: time.February, Day: 28}},
				Southern: MonthDayRange{Start: MonthDay{Month: time.June, Day: 1}, End: MonthDay{Month: time.August, Day: 31}},
			},
			"summer": {
				Northern: MonthDayRange{Start: MonthDay{Month: time.June, Day: 1}, End: MonthDay{Month: time.August, Day: 31}},
				Southern: MonthDayRange{Start: MonthDay{Month: time.December, Day: 1}, End: MonthDay{Month: time.February, Day: 28}},
			},
		},
		WeekdayNumbers: map[string]time.Weekday{
			"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
			"wednesday": time.Wednesday, "thursday": time.Thursday, "friday": time.Friday,
			"saturday": time.Saturday,
		},
	}
}
