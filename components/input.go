package components

import "github.com/yohamta/donburi"

// InputData is the per-frame input state sampled by the input system and
// consumed by the camera system. Pan is in viewport units, ZoomDelta in zoom
// units, RotateDelta in radians.
type InputData struct {
	PanX, PanY  float64
	ZoomDelta   float64
	RotateDelta float64

	ToggleDebug bool
	ToggleLimit bool
	ToggleClamp bool
	ResetView   bool

	Clicked          bool
	CursorX, CursorY int
}

var Input = donburi.NewComponentType[InputData]()
