package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeepsDiagonalAtUnitLength(t *testing.T) {
	dx, dy := Normalize(1, -1)
	assert.InDelta(t, 1.0, math.Hypot(dx, dy), 1e-9)
	assert.InDelta(t, math.Sqrt2/2, dx, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, dy, 1e-9)

	dx, dy = Normalize(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestAngleToAndDirection(t *testing.T) {
	angle := AngleTo(0, 0, 0, 10)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)

	dx, dy := Direction(angle)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 1, dy, 1e-9)
}

func TestCirclesOverlapIsStrict(t *testing.T) {
	assert.True(t, CirclesOverlap(0, 0, 5, 9, 0, 5))
	assert.False(t, CirclesOverlap(0, 0, 5, 10, 0, 5), "touching circles do not collide")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 25.0, Clamp(-3, 25, 100))
	assert.Equal(t, 100.0, Clamp(300, 25, 100))
	assert.Equal(t, 50.0, Clamp(50, 25, 100))
}

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	r := a.Range(10, 20)
	assert.GreaterOrEqual(t, r, 10.0)
	assert.Less(t, r, 20.0)
	assert.Contains(t, []float64{-1, 1}, a.Sign())
}
