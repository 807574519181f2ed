package gamemath

import "math"

// NormalizeAngle wraps angle into [0, 2π). It is idempotent.
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleSpan returns the signed shortest-path rotation from angleFrom to
// angleTo. The result is in (-π, π]; positive means counterclockwise.
func AngleSpan(angleFrom, angleTo float64) float64 {
	diff := NormalizeAngle(angleTo) - NormalizeAngle(angleFrom)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}
