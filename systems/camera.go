package systems

import (
	"github.com/automoto/boardcam/camera"
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/gamemath"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateCamera feeds the sampled input into the camera mutators and applies
// the runtime toggles.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if input.ToggleDebug {
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}
	if input.ToggleLimit {
		settings.LimitEntireViewPort = !settings.LimitEntireViewPort
		SaveCurrentSettings(settings)
	}
	if input.ToggleClamp {
		settings.LineClamp = !settings.LineClamp
		SaveCurrentSettings(settings)
	}
	cam.LimitEntireViewPort = settings.LimitEntireViewPort

	if input.ResetView {
		resetView(cam)
		return
	}

	if input.PanX != 0 || input.PanY != 0 {
		// Pan in viewport units so the felt speed is zoom-independent,
		// then convert the displacement to world space.
		offset := cam.VectorToWorld(math2.Vec2{
			X: input.PanX * cfg.Camera.PanSpeed,
			Y: input.PanY * cfg.Camera.PanSpeed,
		})

		if settings.LineClamp && !settings.LimitEntireViewPort {
			destination := gamemath.Add(cam.Position(), offset)
			clamped, err := camera.ClampAlongLine(cam.Position(), destination, cam.PositionBound())
			if err != nil {
				// The origin is always the last accepted position, so a
				// missing edge intersection means corrupted camera state.
				panic(err)
			}
			cam.SetPosition(clamped)
		} else {
			cam.SetPositionBy(offset)
		}
	}

	if input.ZoomDelta != 0 {
		target := cam.ZoomLevel() + input.ZoomDelta
		if settings.LimitEntireViewPort {
			// Below this floor the viewport no longer fits inside the
			// boundary at some rotation and every pan would be rejected.
			if floor := cam.MinZoomLevelWithRotation(); target < floor {
				target = floor
			}
		}
		cam.SetZoomLevel(target)
	}

	if input.RotateDelta != 0 {
		cam.SetRotationBy(input.RotateDelta)
	}
}

// resetView recenters on the boundary middle at zoom 1 with no rotation.
func resetView(cam *camera.Camera) {
	cam.SetRotation(0)
	cam.SetZoomLevel(1)
	b := cam.PositionBound()
	cam.SetPosition(math2.Vec2{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	})
}
