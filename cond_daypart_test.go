package timecond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayPartCond_NamedBand(t *testing.T) {
	c, err := NewDayPartCond("morning", DayTime{Hour: 6}, DayTime{Hour: 12}, false)
	assert.NoError(t, err)

	assert.Equal(t, "morning", c.Name)
	assert.True(t, c.Contains(dayAt(9, 0)))
	assert.False(t, c.Contains(dayAt(13, 0)))
}
