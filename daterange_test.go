package timecond

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	r := NewRange(dayAt(9, 0), dayAt(10, 0))

	assert.False(t, r.Contains(dayAt(8, 59)))
	assert.True(t, r.Contains(dayAt(9, 0)))
	assert.True(t, r.Contains(dayAt(9, 30)))
	assert.False(t, r.Contains(dayAt(10, 0)))

	open := NewOpenRange(dayAt(9, 0))
	assert.True(t, open.Contains(dayAt(9, 0)))
	assert.True(t, open.Contains(time.Date(2999, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateRange_Equal(t *testing.T) {
	a := NewRange(dayAt(9, 0), dayAt(10, 0))
	b := NewRange(dayAt(9, 0), dayAt(10, 0))
	c := NewOpenRange(dayAt(9, 0))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
}

func TestDateRange_Clone_DoesNotAlias(t *testing.T) {
	r := NewRange(dayAt(9, 0), dayAt(10, 0))
	cloned := r.Clone()

	*cloned.End = dayAt(11, 0)

	assert.Equal(t, dayAt(10, 0), *r.End)
}

func TestNewRange_PanicsOnInvertedBounds(t *testing.T) {
	assert.Panics(t, func() { NewRange(dayAt(10, 0), dayAt(9, 0)) })
	assert.Panics(t, func() { NewRange(dayAt(9, 0), dayAt(9, 0)) })
}

func TestDateRange_Duration(t *testing.T) {
	r := NewRange(dayAt(9, 0), dayAt(10, 30))
	assert.Equal(t, 90*time.Minute, r.Duration())

	assert.Panics(t, func() { NewOpenRange(dayAt(9, 0)).Duration() })
}
