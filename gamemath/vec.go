// Package gamemath provides pure geometry helpers shared by the camera core
// and the demo systems. It has no dependencies on ebitengine, donburi/ecs, or
// resolv — plain math over the Vec2 value type only.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Add returns a + b.
func Add(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b math2.Vec2) math2.Vec2 {
	return math2.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v scaled by s.
func Scale(v math2.Vec2, s float64) math2.Vec2 {
	return math2.Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b math2.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D cross product (z component) of a and b.
func Cross(a, b math2.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rotate rotates v counterclockwise by angle radians about the origin.
func Rotate(v math2.Vec2, angle float64) math2.Vec2 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return math2.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
