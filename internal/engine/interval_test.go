package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalContainsAndSurrounds(t *testing.T) {
	in := NewInterval(1, 3)

	assert.True(t, in.Contains(1))
	assert.True(t, in.Contains(3))
	assert.True(t, in.Contains(2))
	assert.False(t, in.Contains(0.999))
	assert.False(t, in.Contains(3.001))

	assert.False(t, in.Surrounds(1), "surrounds excludes the endpoints")
	assert.False(t, in.Surrounds(3))
	assert.True(t, in.Surrounds(2))
}

func TestIntervalClamp(t *testing.T) {
	in := NewInterval(0, 1)
	assert.Equal(t, 0.0, in.Clamp(-5))
	assert.Equal(t, 1.0, in.Clamp(5))
	assert.Equal(t, 0.5, in.Clamp(0.5))
}

func TestIntervalSizeExpandUnion(t *testing.T) {
	in := NewInterval(2, 5)
	assert.Equal(t, 3.0, in.Size())

	expanded := in.Expand(2)
	assert.Equal(t, 1.0, expanded.Min)
	assert.Equal(t, 6.0, expanded.Max)

	union := NewInterval(0, 1).Union(NewInterval(4, 9))
	assert.Equal(t, 0.0, union.Min)
	assert.Equal(t, 9.0, union.Max)
}

func TestDegenerateIntervals(t *testing.T) {
	assert.False(t, EmptyInterval.Contains(0))
	assert.True(t, UniverseInterval.Contains(math.MaxFloat64))
	assert.True(t, UniverseInterval.Contains(-math.MaxFloat64))
	assert.Less(t, EmptyInterval.Size(), 0.0)
}
