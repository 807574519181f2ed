package systems

import (
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines the position boundary and the focal point when debug
// mode is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera
	b := cam.PositionBound()

	corners := []math2.Vec2{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
	for i := range corners {
		x0, y0 := projectToScreen(cam, screen, corners[i])
		x1, y1 := projectToScreen(cam, screen, corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.Colors.Boundary, false)
	}

	// Focal point cross.
	cx, cy := projectToScreen(cam, screen, cam.Position())
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, cfg.Colors.Boundary, false)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, cfg.Colors.Boundary, false)

	// Collision object outlines, culled crudely to the screen.
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		x0, y0 := projectToScreen(cam, screen, math2.Vec2{X: obj.X, Y: obj.Y})
		x1, y1 := projectToScreen(cam, screen, math2.Vec2{X: obj.X + obj.W, Y: obj.Y + obj.H})
		if (x0 < 0 && x1 < 0) || (x0 > width && x1 > width) ||
			(y0 < 0 && y1 < 0) || (y0 > height && y1 > height) {
			continue
		}
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, cfg.Colors.GridLine, false)
	}
}
