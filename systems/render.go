package systems

import (
	"image/color"

	"github.com/automoto/boardcam/camera"
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// cameraGeoM builds the world-to-screen transform: translate by the camera
// position, scale by the zoom, undo the rotation, recenter on the screen.
func cameraGeoM(cam *camera.Camera, screen *ebiten.Image) ebiten.GeoM {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	pos := cam.Position()

	var g ebiten.GeoM
	g.Translate(-pos.X, -pos.Y)
	g.Scale(cam.ZoomLevel(), cam.ZoomLevel())
	g.Rotate(-cam.Rotation())
	g.Translate(float64(width)/2, float64(height)/2)
	return g
}

// projectToScreen maps a world point to screen pixels through the camera.
func projectToScreen(cam *camera.Camera, screen *ebiten.Image, p math2.Vec2) (float32, float32) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := cam.WorldToViewPort(p)
	return float32(vp.X + float64(width)/2), float32(vp.Y + float64(height)/2)
}

func fillWorldRect(screen *ebiten.Image, camGeoM ebiten.GeoM, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/3, h/3)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(camGeoM)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whiteImage, op)
}

// DrawBoard renders the board area, the blocked cells, and the markers under
// the camera transform.
func DrawBoard(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera

	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry).Data

	g := cameraGeoM(cam, screen)

	fillWorldRect(screen, g, 0, 0, float64(board.BoardWidth), float64(board.BoardHeight), cfg.Colors.Board)
	for _, cell := range board.Blocked {
		fillWorldRect(screen, g, cell.X, cell.Y, cell.W, cell.H, cfg.Colors.Blocked)
	}
}

// DrawMarkers renders the marker objects, highlighting the selected one.
func DrawMarkers(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Camera
	settings := GetOrCreateSettings(e)

	g := cameraGeoM(cam, screen)

	tags.Marker.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		name := components.Marker.Get(entry).Name

		c := cfg.Colors.Marker
		if name != "" && name == settings.Selected {
			c = cfg.Colors.Selected
		}
		fillWorldRect(screen, g, obj.X, obj.Y, obj.W, obj.H, c)
	})
}
