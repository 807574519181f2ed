package camera

import "math"

// rotationSamples is the number of rotation angles sampled over a quarter
// turn when deriving the rotated zoom floor. A rectangle's bounding box
// repeats every 90 degrees, so a quarter turn covers all cases. More samples
// tighten the bound at linear cost.
const rotationSamples = 10

// MinZoomLevel returns the smallest zoom level at which the unrotated
// viewport still fits inside the position boundary rectangle.
func MinZoomLevel(viewPortWidth, viewPortHeight float64, b PositionBoundary) float64 {
	return math.Max(viewPortWidth/b.Width(), viewPortHeight/b.Height())
}

// MinZoomLevelWithRotation returns the smallest zoom level at which the
// viewport fits inside the position boundary at any rotation. It samples the
// rotated bounding box over a quarter turn and keeps the worst case per axis;
// the result is a sampled bound, not a closed-form extremum.
func MinZoomLevelWithRotation(viewPortWidth, viewPortHeight float64, b PositionBoundary) float64 {
	boundaryWidth := b.Width()
	boundaryHeight := b.Height()

	var maxZoomX, maxZoomY float64
	for i := 0; i <= rotationSamples; i++ {
		angle := (math.Pi / 2) * float64(i) / rotationSamples
		sin, cos := math.Sin(angle), math.Cos(angle)

		// Bounding box of the viewport rotated by angle.
		effWidth := viewPortWidth*cos + viewPortHeight*sin
		effHeight := viewPortHeight*cos + viewPortWidth*sin

		maxZoomX = math.Max(maxZoomX, effWidth/boundaryWidth)
		maxZoomY = math.Max(maxZoomY, effHeight/boundaryHeight)
	}
	return math.Max(maxZoomX, maxZoomY)
}
