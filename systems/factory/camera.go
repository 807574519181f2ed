package factory

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/boarddata"
	"github.com/automoto/boardcam/camera"
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera entity. The position boundary is derived
// from the board extent plus the configured padding; viewport size follows
// the window.
func CreateCamera(ecs *ecs.ECS, board *boarddata.BoardData) *donburi.Entry {
	pad := cfg.Camera.BoundaryPadding
	cam := camera.NewWithConfig(camera.Config{
		ViewPortWidth:  float64(cfg.C.Width),
		ViewPortHeight: float64(cfg.C.Height),
		PositionBoundary: camera.PositionBoundary{
			Min: math2.Vec2{X: -pad, Y: -pad},
			Max: math2.Vec2{X: float64(board.BoardWidth) + pad, Y: float64(board.BoardHeight) + pad},
		},
		ZoomLevelBoundary: camera.ZoomLevelBoundary{
			Min: cfg.Camera.ZoomMin,
			Max: cfg.Camera.ZoomMax,
		},
	})
	cam.LimitEntireViewPort = cfg.Camera.LimitEntireViewPort

	if cfg.Camera.RestrictRotation {
		cam.SetRotationBound(camera.RotationBoundary{
			Start:             cfg.Camera.RotationStart,
			End:               cfg.Camera.RotationEnd,
			PositiveDirection: cfg.Camera.RotationPositive,
			StartForTieBreak:  cfg.Camera.RotationStartTieBreak,
		})
	}

	// Start centered on the board.
	cam.SetPosition(math2.Vec2{
		X: float64(board.BoardWidth) / 2,
		Y: float64(board.BoardHeight) / 2,
	})

	entry := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{Camera: cam}

	// Count accepted mutations for the HUD.
	cam.OnPan(func(_, _ math2.Vec2, _ camera.Snapshot) { data.PanCount++ })
	cam.OnZoom(func(_, _ float64, _ camera.Snapshot) { data.ZoomCount++ })
	cam.OnRotate(func(_, _ float64, _ camera.Snapshot) { data.RotateCount++ })

	components.Camera.Set(entry, data)
	return entry
}
