package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationBoundaryContains(t *testing.T) {
	b := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true}

	assert.True(t, b.Contains(0))
	assert.True(t, b.Contains(math.Pi/2))
	assert.True(t, b.Contains(math.Pi))
	assert.False(t, b.Contains(3*math.Pi/2))
	// Any radian value is accepted; -pi/2 is the same angle as 3pi/2.
	assert.False(t, b.Contains(-math.Pi/2))
}

func TestRotationBoundaryContainsNegativeDirection(t *testing.T) {
	// Same edges, opposite arc: inside is now the sweep from start going
	// clockwise to end.
	b := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: false}

	assert.True(t, b.Contains(3*math.Pi/2))
	assert.True(t, b.Contains(math.Pi))
	assert.False(t, b.Contains(math.Pi/2))
}

func TestRotationBoundaryContainsOwnEdges(t *testing.T) {
	// Both edges belong to the arc regardless of direction.
	for _, positive := range []bool{true, false} {
		b := RotationBoundary{Start: 2, End: 5, PositiveDirection: positive}
		assert.True(t, b.Contains(b.Start), "start edge, positive=%v", positive)
		assert.True(t, b.Contains(b.End), "end edge, positive=%v", positive)
	}
}

func TestSetRotationByClampsOnNegativeArc(t *testing.T) {
	cam := New()
	cam.SetRotationBound(RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: false})
	cam.SetRotation(2*math.Pi - 0.1)

	// The clamped target is the start edge itself, which must be accepted.
	cam.SetRotationBy(0.3)
	assert.InDelta(t, 0, cam.Rotation(), 1e-12)
}

func TestRotationBoundaryClampInsideUnchanged(t *testing.T) {
	b := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true}
	assert.InDelta(t, 1.0, b.Clamp(1.0), 1e-12)
}

func TestRotationBoundaryClampToNearestEdge(t *testing.T) {
	b := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true}

	// Just past the end edge: end is closer.
	assert.InDelta(t, math.Pi, b.Clamp(math.Pi+0.2), 1e-12)
	// Just below the start edge (wrapping): start is closer.
	assert.InDelta(t, 0, b.Clamp(2*math.Pi-0.2), 1e-12)
}

func TestRotationBoundaryClampTieBreak(t *testing.T) {
	// 3pi/2 is exactly equidistant from both edges of [0, pi].
	withStart := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true, StartForTieBreak: true}
	withEnd := RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true, StartForTieBreak: false}

	assert.InDelta(t, 0, withStart.Clamp(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi, withEnd.Clamp(3*math.Pi/2), 1e-12)
}

func TestClampAgreesWithContains(t *testing.T) {
	boundaries := []RotationBoundary{
		{Start: 0, End: math.Pi, PositiveDirection: true},
		{Start: math.Pi / 4, End: 7 * math.Pi / 4, PositiveDirection: true},
		{Start: 3, End: 1, PositiveDirection: true, StartForTieBreak: true},
		{Start: 5.5, End: 0.5, PositiveDirection: true},
		{Start: 0, End: math.Pi, PositiveDirection: false},
		{Start: 1, End: 3, PositiveDirection: false, StartForTieBreak: true},
		{Start: 0.5, End: 5.5, PositiveDirection: false},
	}
	for _, b := range boundaries {
		for angle := -7.0; angle < 7.0; angle += 0.37 {
			clamped := b.Clamp(angle)
			assert.True(t, b.Contains(clamped),
				"clamp(%f) = %f escapes boundary %+v", angle, clamped, b)
		}
	}
}
