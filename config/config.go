package config

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all demo entities and renderers use.
const Default ecs.LayerID = 0

// WindowConfig contains window and viewport configuration values.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera demo tuning values.
type CameraConfig struct {
	PanSpeed   float64 // viewport units per tick while a pan key is held
	ZoomStep   float64 // zoom delta per mouse wheel notch
	RotateStep float64 // radians per tick while a rotate key is held

	ZoomMin float64
	ZoomMax float64

	// BoundaryPadding extends the position boundary beyond the board edges
	// so the focal point can approach the rim (world units).
	BoundaryPadding float64

	// Startup modes; both can be toggled at runtime.
	LimitEntireViewPort bool
	LineClamp           bool

	// Optional rotation arc applied at startup when RestrictRotation is set.
	// Angles are radians.
	RestrictRotation      bool
	RotationStart         float64
	RotationEnd           float64
	RotationPositive      bool
	RotationStartTieBreak bool
}

// BoardConfig selects the board file. An empty path loads the embedded board.
type BoardConfig struct {
	Path string
}

// KeysConfig maps demo actions to keys.
type KeysConfig struct {
	PanUp    []ebiten.Key
	PanDown  []ebiten.Key
	PanLeft  []ebiten.Key
	PanRight []ebiten.Key

	RotateCCW ebiten.Key
	RotateCW  ebiten.Key

	ToggleDebug ebiten.Key
	ToggleLimit ebiten.Key
	ToggleClamp ebiten.Key
	ResetView   ebiten.Key
}

// ColorsConfig contains the demo palette.
type ColorsConfig struct {
	Background color.RGBA
	Board      color.RGBA
	GridLine   color.RGBA
	Blocked    color.RGBA
	Marker     color.RGBA
	Selected   color.RGBA
	Boundary   color.RGBA
	HUDText    color.RGBA
}

var C WindowConfig
var Camera CameraConfig
var Board BoardConfig
var Keys KeysConfig
var Colors ColorsConfig

func init() {
	C = WindowConfig{
		Width:  1280,
		Height: 720,
		Title:  "boardcam",
	}

	Camera = CameraConfig{
		PanSpeed:        6,
		ZoomStep:        0.1,
		RotateStep:      0.02,
		ZoomMin:         0.1,
		ZoomMax:         10,
		BoundaryPadding: 64,
	}

	Board = BoardConfig{}

	Keys = KeysConfig{
		PanUp:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		PanDown:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		PanLeft:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		PanRight: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},

		RotateCCW: ebiten.KeyQ,
		RotateCW:  ebiten.KeyE,

		ToggleDebug: ebiten.KeyF1,
		ToggleLimit: ebiten.KeyL,
		ToggleClamp: ebiten.KeyC,
		ResetView:   ebiten.KeyR,
	}

	Colors = ColorsConfig{
		Background: color.RGBA{24, 24, 28, 255},
		Board:      color.RGBA{38, 40, 48, 255},
		GridLine:   color.RGBA{52, 54, 64, 255},
		Blocked:    color.RGBA{90, 96, 120, 255},
		Marker:     color.RGBA{235, 180, 60, 255},
		Selected:   color.RGBA{120, 220, 130, 255},
		Boundary:   color.RGBA{200, 80, 80, 255},
		HUDText:    color.RGBA{220, 220, 220, 255},
	}
}
