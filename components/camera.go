package components

import (
	"github.com/automoto/boardcam/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Camera *camera.Camera

	// Event counters bumped by the camera's observer callbacks; the HUD
	// shows them to make accepted-vs-rejected mutations visible.
	PanCount    int
	ZoomCount   int
	RotateCount int
}

var Camera = donburi.NewComponentType[CameraData]()
