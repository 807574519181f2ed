package scenes

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/boardcam/assets"
	"github.com/automoto/boardcam/boarddata"
	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/systems"
	"github.com/automoto/boardcam/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BoardScene is the single scene of the demo: a board viewed through the
// bounded camera.
type BoardScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewBoardScene() *BoardScene {
	return &BoardScene{}
}

func (bs *BoardScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BoardScene) Draw(screen *ebiten.Image) {
	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BoardScene) configure() {
	board, err := loadBoard()
	if err != nil {
		panic("failed to load board: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdatePicking)

	e.AddRenderer(cfg.Default, systems.DrawBoard)
	e.AddRenderer(cfg.Default, systems.DrawMarkers)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	bs.ecs = e

	factory.CreateBoard(e, board)
	factory.CreateSpace(e, board.BoardWidth, board.BoardHeight, board.TileWidth, board.TileHeight)
	for _, cell := range board.Blocked {
		factory.CreateBlocked(e, cell.X, cell.Y, cell.W, cell.H)
	}
	for _, marker := range board.Markers {
		factory.CreateMarker(e, marker.Name, marker.X, marker.Y)
	}
	factory.CreateCamera(e, board)

	// Saved toggles override the config startup modes.
	saved, err := systems.LoadSettings()
	if err == nil {
		systems.ApplySavedSettings(e, saved)
	}
}

// loadBoard reads the configured board file, falling back to the embedded
// one when no path is set.
func loadBoard() (*boarddata.BoardData, error) {
	if cfg.Board.Path == "" {
		return boarddata.LoadBoard(assets.FS, assets.DefaultBoard)
	}

	dir, base := filepath.Split(cfg.Board.Path)
	if dir == "" {
		dir = "."
	}
	var fsys fs.FS = os.DirFS(dir)
	log.Printf("loading board %s", cfg.Board.Path)
	return boarddata.LoadBoard(fsys, base)
}
