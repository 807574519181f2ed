package systems

import (
	"fmt"
	"math"

	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// DrawHUD prints the camera state, active modes, and mutation counters.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camData := components.Camera.Get(cameraEntry)
	cam := camData.Camera
	settings := GetOrCreateSettings(e)

	pos := cam.Position()
	lines := []string{
		fmt.Sprintf("pos %7.1f %7.1f  zoom %.2f  rot %5.1f°",
			pos.X, pos.Y, cam.ZoomLevel(), cam.Rotation()*180/math.Pi),
		fmt.Sprintf("limit viewport [L]: %v   line clamp [C]: %v   debug [F1]: %v",
			settings.LimitEntireViewPort, settings.LineClamp, settings.Debug),
		fmt.Sprintf("accepted: pan %d  zoom %d  rotate %d",
			camData.PanCount, camData.ZoomCount, camData.RotateCount),
	}
	if settings.Selected != "" {
		lines = append(lines, "selected: "+settings.Selected)
	}
	lines = append(lines, "WASD/arrows pan, wheel zoom, Q/E rotate, R reset, click to pick")

	face := basicfont.Face7x13
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, cfg.Colors.HUDText)
		y += 16
	}
}
