package timecond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWeekDayCond_Scenario follows spec.md scenario 1.
func TestWeekDayCond_Scenario(t *testing.T) {
	c, err := NewWeekDayCond(time.Sunday)
	assert.NoError(t, err)

	sunday := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	last, ok := c.LastActiveRange(sunday)
	assert.True(t, ok)
	assert.Equal(t, sunday, last.Start)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), *last.End)

	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	next := c.NextRanges(monday)
	start, ok := next.FirstStart()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), start)
	end, open, ok := next.LastEnd()
	assert.True(t, ok)
	assert.False(t, open)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), end)
}

func TestNewWeekDayCond_RejectsOutOfRange(t *testing.T) {
	_, err := NewWeekDayCond(7)
	assert.Error(t, err)
}
