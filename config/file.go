package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay. Only fields present in the file
// override the built-in defaults, hence the pointers.
type FileConfig struct {
	Window struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		Title  *string `yaml:"title"`
	} `yaml:"window"`

	Camera struct {
		PanSpeed   *float64 `yaml:"pan_speed"`
		ZoomStep   *float64 `yaml:"zoom_step"`
		RotateStep *float64 `yaml:"rotate_step"`

		ZoomMin *float64 `yaml:"zoom_min"`
		ZoomMax *float64 `yaml:"zoom_max"`

		BoundaryPadding *float64 `yaml:"boundary_padding"`

		LimitEntireViewPort *bool `yaml:"limit_entire_viewport"`
		LineClamp           *bool `yaml:"line_clamp"`

		RotationStart         *float64 `yaml:"rotation_start"`
		RotationEnd           *float64 `yaml:"rotation_end"`
		RotationPositive      *bool    `yaml:"rotation_positive"`
		RotationStartTieBreak *bool    `yaml:"rotation_start_tie_break"`
	} `yaml:"camera"`

	Board struct {
		Path *string `yaml:"path"`
	} `yaml:"board"`
}

// LoadFile applies the YAML overlay at path onto the package globals. A
// missing file is not an error; the defaults stand.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	fc.apply()
	return nil
}

func (fc *FileConfig) apply() {
	if fc.Window.Width != nil {
		C.Width = *fc.Window.Width
	}
	if fc.Window.Height != nil {
		C.Height = *fc.Window.Height
	}
	if fc.Window.Title != nil {
		C.Title = *fc.Window.Title
	}

	cam := fc.Camera
	if cam.PanSpeed != nil {
		Camera.PanSpeed = *cam.PanSpeed
	}
	if cam.ZoomStep != nil {
		Camera.ZoomStep = *cam.ZoomStep
	}
	if cam.RotateStep != nil {
		Camera.RotateStep = *cam.RotateStep
	}
	if cam.ZoomMin != nil {
		Camera.ZoomMin = *cam.ZoomMin
	}
	if cam.ZoomMax != nil {
		Camera.ZoomMax = *cam.ZoomMax
	}
	if cam.BoundaryPadding != nil {
		Camera.BoundaryPadding = *cam.BoundaryPadding
	}
	if cam.LimitEntireViewPort != nil {
		Camera.LimitEntireViewPort = *cam.LimitEntireViewPort
	}
	if cam.LineClamp != nil {
		Camera.LineClamp = *cam.LineClamp
	}
	if cam.RotationStart != nil && cam.RotationEnd != nil {
		Camera.RestrictRotation = true
		Camera.RotationStart = *cam.RotationStart
		Camera.RotationEnd = *cam.RotationEnd
		if cam.RotationPositive != nil {
			Camera.RotationPositive = *cam.RotationPositive
		} else {
			Camera.RotationPositive = true
		}
		if cam.RotationStartTieBreak != nil {
			Camera.RotationStartTieBreak = *cam.RotationStartTieBreak
		}
	}

	if fc.Board.Path != nil {
		Board.Path = *fc.Board.Path
	}
}
