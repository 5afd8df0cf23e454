package timecond

import "strings"

// Weekday builds a WeekDayCond from a name looked up (case-insensitive)
// in the Config's weekday table.
func (cfg *Config) Weekday(name string) (*WeekDayCond, error) {
	n, ok := cfg.WeekdayNumbers[strings.ToLower(name)]
	if !ok {
		return nil, unknownNamef("weekday %q", name)
	}
	return NewWeekDayCond(n)
}

// Weekend builds an OrCond covering the weekend, per the Config's
// week-starts-on-Monday flag.
func (cfg *Config) Weekend() (*OrCond, error) {
	if cfg.WeekStartsOnMonday {
		return cfg.orOfWeekdays("saturday", "sunday")
	}
	return cfg.orOfWeekdays("friday", "saturday")
}

// Workday builds an OrCond covering the five working days, per the
// Config's week-starts-on-Monday flag: the non-Monday variant replaces
// Friday with Sunday.
func (cfg *Config) Workday() (*OrCond, error) {
	if cfg.WeekStartsOnMonday {
		return cfg.orOfWeekdays("monday", "tuesday", "wednesday", "thursday", "friday")
	}
	return cfg.orOfWeekdays("sunday", "monday", "tuesday", "wednesday", "thursday")
}

func (cfg *Config) orOfWeekdays(names ...string) (*OrCond, error) {
	children := make([]Condition, 0, len(names))
	for _, name := range names {
		wd, err := cfg.Weekday(name)
		if err != nil {
			return nil, err
		}
		children = append(children, wd)
	}
	return NewOrCond(children...)
}

// Season builds a DateBetweenCond from a season name looked up in the
// Config's season table, choosing the northern or southern window per
// the Config's hemisphere flag. Config stores season MonthDays using
// time.Month already, so no index translation is needed here.
func (cfg *Config) Season(name string) (*DateBetweenCond, error) {
	s, ok := cfg.Seasons[name]
	if !ok {
		return nil, unknownNamef("season %q", name)
	}
	window := s.Northern
	if cfg.SouthernHemisphere {
		window = s.Southern
	}
	return NewDateBetweenCond(window.Start, window.End)
}

// DayPart builds a DayPartCond from a name looked up in the Config's
// day-part table. Construction is always exclusive-end, matching the
// day-part table's own convention.
func (cfg *Config) DayPart(name string) (*DayPartCond, error) {
	dp, ok := cfg.DayParts[name]
	if !ok {
		return nil, unknownNamef("day part %q", name)
	}
	return NewDayPartCond(name, dp.Start, dp.End, false)
}
