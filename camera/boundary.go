package camera

import (
	"github.com/automoto/boardcam/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// PositionBoundary is an axis-aligned world-space rectangle limiting where
// the camera's focal point (or, in whole-viewport mode, the whole visible
// rectangle) may be. Callers are responsible for Min.X <= Max.X and
// Min.Y <= Max.Y; the boundary does not reorder itself.
type PositionBoundary struct {
	Min math2.Vec2
	Max math2.Vec2
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b PositionBoundary) Contains(p math2.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent of the rectangle.
func (b PositionBoundary) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the rectangle.
func (b PositionBoundary) Height() float64 { return b.Max.Y - b.Min.Y }

// ZoomLevelBoundary is an inclusive scalar range for the zoom level.
// Min must be greater than zero; that is a caller responsibility.
type ZoomLevelBoundary struct {
	Min float64
	Max float64
}

// Contains reports whether z lies inside the range, ends included.
func (b ZoomLevelBoundary) Contains(z float64) bool {
	return z >= b.Min && z <= b.Max
}

// normalized returns the boundary with Min and Max swapped if they were
// given inverted. Inverted bounds are corrected, never rejected.
func (b ZoomLevelBoundary) normalized() ZoomLevelBoundary {
	if b.Min > b.Max {
		b.Min, b.Max = b.Max, b.Min
	}
	return b
}

// RotationBoundary is an angular arc limiting the camera rotation. Start and
// End are radians, normalized to [0, 2π) on assignment to a camera.
// PositiveDirection selects which of the two arcs between Start and End is
// inside: true walks counterclockwise from Start to End. StartForTieBreak
// picks the edge to clamp to when an angle is exactly equidistant from both.
type RotationBoundary struct {
	Start             float64
	End               float64
	PositiveDirection bool
	StartForTieBreak  bool
}

// normalized returns the boundary with both edge angles wrapped to [0, 2π).
func (b RotationBoundary) normalized() RotationBoundary {
	b.Start = gamemath.NormalizeAngle(b.Start)
	b.End = gamemath.NormalizeAngle(b.End)
	return b
}
