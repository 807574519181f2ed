package components

import "github.com/yohamta/donburi"

// SettingsData holds the demo toggles. LimitEntireViewPort and LineClamp
// select the camera's pan boundary mode and clamp strategy; Debug shows the
// boundary overlay. Selected is the marker name under the last click, empty
// when none.
type SettingsData struct {
	Debug               bool
	LimitEntireViewPort bool
	LineClamp           bool

	Selected string
}

var Settings = donburi.NewComponentType[SettingsData]()
