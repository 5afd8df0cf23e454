package timecond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestTimeSpanCond_BucketAlignment follows spec.md scenario 8.
func TestTimeSpanCond_BucketAlignment(t *testing.T) {
	c, err := NewTimeSpanCond(0, 0, 3, 0, 0)
	assert.NoError(t, err)

	at := time.Date(2024, time.July, 26, 10, 30, 0, 0, time.UTC)
	r, ok := c.LastActiveRange(at)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 26, 10, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.July, 26, 13, 0, 0, 0, time.UTC), *r.End)
}

func TestTimeSpanCond_NextRanges(t *testing.T) {
	c, err := NewTimeSpanCond(0, 0, 3, 0, 0)
	assert.NoError(t, err)

	at := time.Date(2024, time.July, 26, 10, 30, 0, 0, time.UTC)
	next := c.NextRanges(at)
	start, ok := next.FirstStart()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 26, 11, 0, 0, 0, time.UTC), start)
}

func TestTimeSpanCond_MonthGranularity(t *testing.T) {
	c, err := NewTimeSpanCond(2, 0, 0, 0, 0)
	assert.NoError(t, err)

	at := time.Date(2024, time.July, 26, 10, 30, 0, 0, time.UTC)
	r, ok := c.LastActiveRange(at)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), *r.End)
}

func TestNewTimeSpanCond_RequiresPositiveComponent(t *testing.T) {
	_, err := NewTimeSpanCond(0, 0, 0, 0, 0)
	assert.Error(t, err)

	_, err = NewTimeSpanCond(0, -1, 0, 0, 0)
	assert.Error(t, err)
}
