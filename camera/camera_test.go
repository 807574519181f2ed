package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func newTestCamera() *Camera {
	return NewWithConfig(Config{
		ViewPortWidth:  500,
		ViewPortHeight: 500,
		PositionBoundary: PositionBoundary{
			Min: math2.Vec2{X: -1000, Y: -1000},
			Max: math2.Vec2{X: 1000, Y: 1000},
		},
	})
}

func TestNewDefaults(t *testing.T) {
	c := New()

	w, h := c.ViewPortSize()
	assert.Equal(t, 500.0, w)
	assert.Equal(t, 500.0, h)
	assert.Equal(t, 1.0, c.ZoomLevel())
	assert.Equal(t, math2.Vec2{}, c.Position())
	assert.Equal(t, 0.0, c.Rotation())

	b := c.PositionBound()
	assert.Equal(t, math2.Vec2{X: -1000, Y: -1000}, b.Min)
	assert.Equal(t, math2.Vec2{X: 1000, Y: 1000}, b.Max)

	z := c.ZoomLevelBound()
	assert.Equal(t, 0.1, z.Min)
	assert.Equal(t, 10.0, z.Max)

	_, ok := c.RotationBound()
	assert.False(t, ok)
}

func TestZoomBoundInvertedSwapped(t *testing.T) {
	c := New()
	c.SetZoomLevelBound(ZoomLevelBoundary{Min: 5, Max: 2})
	b := c.ZoomLevelBound()
	assert.Equal(t, 2.0, b.Min)
	assert.Equal(t, 5.0, b.Max)
}

func TestSetPositionAcceptedNotifies(t *testing.T) {
	c := newTestCamera()

	var gotOrigin, gotDest math2.Vec2
	var gotState Snapshot
	calls := 0
	c.OnPan(func(origin, destination math2.Vec2, state Snapshot) {
		calls++
		gotOrigin, gotDest, gotState = origin, destination, state
	})

	c.SetPosition(math2.Vec2{X: 100, Y: -50})

	require.Equal(t, 1, calls)
	assert.Equal(t, math2.Vec2{}, gotOrigin)
	assert.Equal(t, math2.Vec2{X: 100, Y: -50}, gotDest)
	assert.Equal(t, math2.Vec2{X: 100, Y: -50}, gotState.Position)
	assert.Equal(t, 1.0, gotState.ZoomLevel)
}

func TestSetPositionRejectedSilently(t *testing.T) {
	c := NewWithConfig(Config{
		PositionBoundary: PositionBoundary{
			Min: math2.Vec2{X: -10, Y: -10},
			Max: math2.Vec2{X: 10, Y: 10},
		},
	})
	c.SetPosition(math2.Vec2{X: 5, Y: 5})

	calls := 0
	c.OnPan(func(_, _ math2.Vec2, _ Snapshot) { calls++ })

	c.SetPosition(math2.Vec2{X: 15, Y: 0})

	assert.Equal(t, math2.Vec2{X: 5, Y: 5}, c.Position())
	assert.Equal(t, 0, calls)
}

func TestSetPositionToCurrentStillNotifies(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(math2.Vec2{X: 7, Y: 7})

	calls := 0
	c.OnPan(func(origin, destination math2.Vec2, _ Snapshot) {
		calls++
		assert.Equal(t, origin, destination)
	})
	c.SetPosition(math2.Vec2{X: 7, Y: 7})
	assert.Equal(t, 1, calls)
}

func TestSetPositionByClampsThenMoves(t *testing.T) {
	c := NewWithConfig(Config{
		PositionBoundary: PositionBoundary{
			Min: math2.Vec2{X: -10, Y: -10},
			Max: math2.Vec2{X: 10, Y: 10},
		},
	})

	c.SetPositionBy(math2.Vec2{X: 25, Y: 0})
	assert.Equal(t, math2.Vec2{X: 10, Y: 0}, c.Position())
}

func TestSetZoomLevel(t *testing.T) {
	c := newTestCamera()

	calls := 0
	c.OnZoom(func(origin, destination float64, state Snapshot) {
		calls++
		assert.Equal(t, 1.0, origin)
		assert.Equal(t, 2.5, destination)
		assert.Equal(t, 2.5, state.ZoomLevel)
	})

	c.SetZoomLevel(2.5)
	assert.Equal(t, 2.5, c.ZoomLevel())

	// Outside [0.1, 10]: rejected, state and call count untouched.
	c.SetZoomLevel(50)
	c.SetZoomLevel(0)
	assert.Equal(t, 2.5, c.ZoomLevel())
	assert.Equal(t, 1, calls)
}

func TestSetZoomLevelBy(t *testing.T) {
	c := newTestCamera()
	c.SetZoomLevelBy(0.5)
	assert.InDelta(t, 1.5, c.ZoomLevel(), 1e-12)
	c.SetZoomLevelBy(100)
	assert.InDelta(t, 1.5, c.ZoomLevel(), 1e-12)
}

func TestSetRotationNormalizesAndNotifies(t *testing.T) {
	c := newTestCamera()

	var got float64
	c.OnRotate(func(_, destination float64, _ Snapshot) { got = destination })

	c.SetRotation(-math.Pi / 2)
	assert.InDelta(t, 3*math.Pi/2, c.Rotation(), 1e-12)
	assert.InDelta(t, 3*math.Pi/2, got, 1e-12)
}

func TestSetRotationRejectedOutsideBoundary(t *testing.T) {
	c := newTestCamera()
	c.SetRotationBound(RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true})

	calls := 0
	c.OnRotate(func(_, _ float64, _ Snapshot) { calls++ })

	c.SetRotation(3 * math.Pi / 2)
	assert.Equal(t, 0.0, c.Rotation())
	assert.Equal(t, 0, calls)

	c.SetRotation(math.Pi / 2)
	assert.InDelta(t, math.Pi/2, c.Rotation(), 1e-12)
	assert.Equal(t, 1, calls)
}

func TestSetRotationByClampsToBoundary(t *testing.T) {
	c := newTestCamera()
	c.SetRotationBound(RotationBoundary{Start: 0, End: math.Pi, PositiveDirection: true})
	c.SetRotation(math.Pi - 0.1)

	// Over-rotating past the end edge lands exactly on it.
	c.SetRotationBy(0.5)
	assert.InDelta(t, math.Pi, c.Rotation(), 1e-12)
}

func TestClearRotationBound(t *testing.T) {
	c := newTestCamera()
	c.SetRotationBound(RotationBoundary{Start: 0, End: 1, PositiveDirection: true})
	c.ClearRotationBound()

	c.SetRotation(4)
	assert.InDelta(t, 4, c.Rotation(), 1e-12)
}

func TestTransformRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(math2.Vec2{X: 120, Y: -75})
	c.SetZoomLevel(2.5)
	c.SetRotation(0.7)

	points := []math2.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 20}, {X: -35.5, Y: 4.25}, {X: 200, Y: -150},
	}
	for _, p := range points {
		back := c.WorldToViewPort(c.ViewPortToWorld(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestVectorToWorldIgnoresTranslation(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(math2.Vec2{X: 500, Y: 500})
	c.SetZoomLevel(2)

	v := c.VectorToWorld(math2.Vec2{X: 10, Y: 0})
	assert.InDelta(t, 5, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)
}

func TestLimitEntireViewPortRejectsPartialExit(t *testing.T) {
	c := NewWithConfig(Config{
		ViewPortWidth:  100,
		ViewPortHeight: 100,
		PositionBoundary: PositionBoundary{
			Min: math2.Vec2{X: -100, Y: -100},
			Max: math2.Vec2{X: 100, Y: 100},
		},
	})
	c.LimitEntireViewPort = true

	// Centered, the 100x100 viewport at zoom 1 fits easily.
	c.SetPosition(math2.Vec2{X: 0, Y: 0})

	// At x=60 the right viewport edge would sit at 110, outside.
	c.SetPosition(math2.Vec2{X: 60, Y: 0})
	assert.Equal(t, math2.Vec2{X: 0, Y: 0}, c.Position())

	// x=50 puts the right edge exactly on the boundary: accepted.
	c.SetPosition(math2.Vec2{X: 50, Y: 0})
	assert.Equal(t, math2.Vec2{X: 50, Y: 0}, c.Position())
}

func TestLimitEntireViewPortSetPositionByPullsBack(t *testing.T) {
	c := NewWithConfig(Config{
		ViewPortWidth:  100,
		ViewPortHeight: 100,
		PositionBoundary: PositionBoundary{
			Min: math2.Vec2{X: -100, Y: -100},
			Max: math2.Vec2{X: 100, Y: 100},
		},
	})
	c.LimitEntireViewPort = true

	c.SetPositionBy(math2.Vec2{X: 500, Y: 0})

	// The corner-delta clamp pulls the viewport back inside: every corner
	// of the visible rectangle ends up within the boundary.
	pos := c.Position()
	assert.InDelta(t, 50, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
}

func TestSnapshotDecoupledFromLiveState(t *testing.T) {
	c := newTestCamera()

	var snap Snapshot
	c.OnPan(func(_, _ math2.Vec2, state Snapshot) { snap = state })

	c.SetPosition(math2.Vec2{X: 10, Y: 10})
	c.position = math2.Vec2{X: 999, Y: 999} // mutate live state directly

	assert.Equal(t, math2.Vec2{X: 10, Y: 10}, snap.Position)
}
