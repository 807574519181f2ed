package camera

import (
	"math"

	"github.com/automoto/boardcam/gamemath"
)

// Contains reports whether rotation lies on the boundary's arc. rotation is
// normalized before the test, so any radian value is accepted.
func (b RotationBoundary) Contains(rotation float64) bool {
	angleFromStart := gamemath.NormalizeAngle(gamemath.NormalizeAngle(rotation) - b.Start)
	angleRange := gamemath.NormalizeAngle(b.End - b.Start)
	if !b.PositiveDirection {
		// Re-wrap after mirroring so the Start edge maps to 0, not 2π.
		angleFromStart = gamemath.NormalizeAngle(2*math.Pi - angleFromStart)
		angleRange = gamemath.NormalizeAngle(2*math.Pi - angleRange)
	}
	return angleRange >= angleFromStart
}

// Clamp returns rotation unchanged when it is inside the arc, otherwise the
// arc edge that is angularly closest by shortest path. An exact tie goes to
// Start when StartForTieBreak is set, else to End.
func (b RotationBoundary) Clamp(rotation float64) float64 {
	rotation = gamemath.NormalizeAngle(rotation)
	if b.Contains(rotation) {
		return rotation
	}

	toStart := gamemath.AngleSpan(rotation, b.Start)
	toEnd := gamemath.AngleSpan(rotation, b.End)
	distStart := math.Abs(toStart)
	distEnd := math.Abs(toEnd)

	switch {
	case distStart < distEnd:
		return b.Start
	case distEnd < distStart:
		return b.End
	case b.StartForTieBreak:
		return b.Start
	default:
		return b.End
	}
}
