package timecond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFirstAfterStartCond_NextRanges follows spec.md scenario 6.
func TestFirstAfterStartCond_NextRanges(t *testing.T) {
	thursday, err := NewWeekDayCond(time.Thursday)
	assert.NoError(t, err)
	lunch, err := NewTimeBetweenCond(DayTime{Hour: 12}, DayTime{Hour: 13}, false)
	assert.NoError(t, err)
	c, err := NewFirstAfterStartCond(thursday, lunch, false)
	assert.NoError(t, err)

	at := time.Date(2024, time.March, 19, 10, 0, 0, 0, time.UTC) // a Tuesday
	next := c.NextRanges(at)
	r, ok := next.First()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 21, 12, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 21, 13, 0, 0, 0, time.UTC), *r.End)
}

func TestFirstAfterStartCond_LastActiveRange_Inclusive(t *testing.T) {
	thursday, err := NewWeekDayCond(time.Thursday)
	assert.NoError(t, err)
	lunch, err := NewTimeBetweenCond(DayTime{Hour: 12}, DayTime{Hour: 13}, false)
	assert.NoError(t, err)
	c, err := NewFirstAfterStartCond(thursday, lunch, true)
	assert.NoError(t, err)

	at := time.Date(2024, time.March, 22, 15, 0, 0, 0, time.UTC) // Friday, after lunch on Thursday
	r, ok := c.LastActiveRange(at)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 21, 12, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 21, 13, 0, 0, 0, time.UTC), *r.End)
}
