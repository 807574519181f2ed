package camera

import (
	"errors"
	"fmt"

	"github.com/automoto/boardcam/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// ErrNoEdgeIntersection reports that the line clamp detected a boundary
// violation but found no intersection between the movement segment and the
// violated edge. The edge classification guarantees an intersection exists
// when the origin is inside the boundary, so this is an invariant break, not
// a recoverable condition.
var ErrNoEdgeIntersection = errors.New("camera: no intersection with violated boundary edge")

// ClampPoint clamps p per axis into the boundary rectangle.
func ClampPoint(p math2.Vec2, b PositionBoundary) math2.Vec2 {
	return math2.Vec2{
		X: gamemath.Clamp(p.X, b.Min.X, b.Max.X),
		Y: gamemath.Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// ClampAlongLine clamps destination to the boundary along the movement
// segment from origin. A destination already inside is returned unchanged.
// When the destination exceeds two adjacent edges at once the result snaps
// to the shared corner; when it exceeds a single edge the result is the
// intersection of origin->destination with that edge. origin is expected to
// be inside the boundary (it is the last accepted position).
func ClampAlongLine(origin, destination math2.Vec2, b PositionBoundary) (math2.Vec2, error) {
	if b.Contains(destination) {
		return destination, nil
	}

	left := destination.X < b.Min.X
	right := destination.X > b.Max.X
	bottom := destination.Y < b.Min.Y
	top := destination.Y > b.Max.Y

	// Two adjacent edges exceeded: snap to the shared corner.
	switch {
	case top && right:
		return b.Max, nil
	case top && left:
		return math2.Vec2{X: b.Min.X, Y: b.Max.Y}, nil
	case bottom && right:
		return math2.Vec2{X: b.Max.X, Y: b.Min.Y}, nil
	case bottom && left:
		return b.Min, nil
	}

	var edgeStart, edgeEnd math2.Vec2
	switch {
	case top:
		edgeStart = math2.Vec2{X: b.Min.X, Y: b.Max.Y}
		edgeEnd = b.Max
	case bottom:
		edgeStart = b.Min
		edgeEnd = math2.Vec2{X: b.Max.X, Y: b.Min.Y}
	case left:
		edgeStart = b.Min
		edgeEnd = math2.Vec2{X: b.Min.X, Y: b.Max.Y}
	case right:
		edgeStart = math2.Vec2{X: b.Max.X, Y: b.Min.Y}
		edgeEnd = b.Max
	}

	hit := gamemath.SegmentIntersection(origin, destination, edgeStart, edgeEnd)
	switch hit.Kind {
	case gamemath.IntersectionPoint:
		return hit.Point, nil
	case gamemath.IntersectionInterval:
		return hit.End, nil
	case gamemath.IntersectionNone:
		return math2.Vec2{}, fmt.Errorf("clamp %v -> %v: %w", origin, destination, ErrNoEdgeIntersection)
	default:
		return math2.Vec2{}, fmt.Errorf("clamp %v -> %v: unknown intersection kind %d", origin, destination, hit.Kind)
	}
}
