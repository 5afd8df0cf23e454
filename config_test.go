package timecond

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_WeekdayNumbersMatchTimePackage(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Monday, cfg.WeekdayNumbers["monday"])
	assert.Equal(t, time.Sunday, cfg.WeekdayNumbers["sunday"])
	assert.True(t, cfg.WeekStartsOnMonday)
	assert.False(t, cfg.SouthernHemisphere)
}

func TestDefaultConfig_DayPartsCoverFullDay(t *testing.T) {
	cfg := DefaultConfig()
	night, ok := cfg.DayParts["night"]
	assert.True(t, ok)
	assert.Equal(t, DayTime{Hour: 22}, night.Start)
	assert.Equal(t, DayTime{Hour: 24}, night.End)
}

const testConfigYAML = `
week_starts_on_monday: true
southern_hemisphere: false
day_names: [Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday]
month_names: [January, February, March, April, May, June, July, August, September, October, November, December]
short_month_names: [Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec]
day_parts:
  morning:
    start: "06:00"
    end: "12:00"
seasons:
  winter:
    northern:
      start: "12-01"
      end: "02-28"
    southern:
      start: "06-01"
      end: "08-31"
weekday_numbers:
  sunday: 0
  monday: 1
  tuesday: 2
  wednesday: 3
  thursday: 4
  friday: 5
  saturday: 6
`

func TestDecodeYAML(t *testing.T) {
	cfg, err := DecodeYAML(strings.NewReader(testConfigYAML))
	assert.NoError(t, err)
	assert.True(t, cfg.WeekStartsOnMonday)
	assert.Equal(t, DayTime{Hour: 6}, cfg.DayParts["morning"].Start)
	assert.Equal(t, MonthDay{Month: time.December, Day: 1}, cfg.Seasons["winter"].Northern.Start)
	assert.Equal(t, time.Tuesday, cfg.WeekdayNumbers["tuesday"])
}

func TestDecodeYAML_RejectsOutOfRangeWeekdayNumber(t *testing.T) {
	bad := strings.Replace(testConfigYAML, "saturday: 6", "saturday: 9", 1)
	_, err := DecodeYAML(strings.NewReader(bad))
	assert.Error(t, err)
}
