package systems

import (
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdatePicking resolves mouse clicks to board markers: the cursor position
// is taken to viewport space (relative to the screen center), transformed to
// world space through the camera, and tested against the marker objects in
// the collision space.
func UpdatePicking(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.Clicked {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera
	settings := GetOrCreateSettings(e)

	worldPoint := cam.ViewPortToWorld(math2.Vec2{
		X: float64(input.CursorX) - float64(cfg.C.Width)/2,
		Y: float64(input.CursorY) - float64(cfg.C.Height)/2,
	})

	settings.Selected = ""
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if !obj.HasTags(tags.ResolvMarker) {
			continue
		}
		if worldPoint.X < obj.X || worldPoint.X > obj.X+obj.W ||
			worldPoint.Y < obj.Y || worldPoint.Y > obj.Y+obj.H {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		settings.Selected = components.Marker.Get(entry).Name
		return
	}
}
