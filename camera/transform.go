package camera

import (
	"github.com/automoto/boardcam/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// ViewPortToWorld converts a viewport-space point (relative to the viewport
// center) to world space: undo the zoom, apply the camera rotation, then
// translate by the camera position.
func (c *Camera) ViewPortToWorld(p math2.Vec2) math2.Vec2 {
	return gamemath.Add(gamemath.Rotate(gamemath.Scale(p, 1/c.zoomLevel), c.rotation), c.position)
}

// WorldToViewPort converts a world-space point to viewport space: translate
// by the camera position, apply the zoom, then undo the camera rotation.
func (c *Camera) WorldToViewPort(p math2.Vec2) math2.Vec2 {
	return gamemath.Rotate(gamemath.Scale(gamemath.Sub(p, c.position), c.zoomLevel), -c.rotation)
}

// VectorToWorld converts a viewport-space direction or displacement to world
// space. Same as ViewPortToWorld but without the translation, so free
// vectors keep their meaning.
func (c *Camera) VectorToWorld(v math2.Vec2) math2.Vec2 {
	return gamemath.Rotate(gamemath.Scale(v, 1/c.zoomLevel), c.rotation)
}

// viewPortCorners returns the four viewport corners in world space under the
// given position, zoom and rotation.
func (c *Camera) viewPortCorners(position math2.Vec2, zoomLevel, rotation float64) [4]math2.Vec2 {
	halfW := c.viewPortWidth / 2
	halfH := c.viewPortHeight / 2
	local := [4]math2.Vec2{
		{X: -halfW, Y: -halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
		{X: -halfW, Y: halfH},
	}

	var corners [4]math2.Vec2
	for i, p := range local {
		corners[i] = gamemath.Add(gamemath.Rotate(gamemath.Scale(p, 1/zoomLevel), rotation), position)
	}
	return corners
}

// viewPortWithinBoundary reports whether all four viewport corners stay
// inside the position boundary at the given state.
func (c *Camera) viewPortWithinBoundary(position math2.Vec2, zoomLevel, rotation float64) bool {
	for _, corner := range c.viewPortCorners(position, zoomLevel, rotation) {
		if !c.positionBoundary.Contains(corner) {
			return false
		}
	}
	return true
}

// clampEntireViewPort pulls target back so the whole visible rectangle tends
// toward the boundary. Each out-of-bounds corner is clamped per axis and the
// largest corner delta per axis is applied to the target. This is a
// containment heuristic, not a minimal-correction projection: the corrected
// position is close to, but not guaranteed to be, the tightest fit.
func (c *Camera) clampEntireViewPort(target math2.Vec2) math2.Vec2 {
	corners := c.viewPortCorners(target, c.zoomLevel, c.rotation)

	inside := true
	for _, corner := range corners {
		if !c.positionBoundary.Contains(corner) {
			inside = false
			break
		}
	}
	if inside {
		return target
	}

	var deltaX, deltaY float64
	for _, corner := range corners {
		clamped := ClampPoint(corner, c.positionBoundary)
		dx := clamped.X - corner.X
		dy := clamped.Y - corner.Y
		if abs(dx) > abs(deltaX) {
			deltaX = dx
		}
		if abs(dy) > abs(deltaY) {
			deltaY = dy
		}
	}
	return math2.Vec2{X: target.X + deltaX, Y: target.Y + deltaY}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
