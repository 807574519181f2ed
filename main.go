package main

import (
	"log"

	cfg "github.com/automoto/boardcam/config"
	"github.com/automoto/boardcam/scenes"
	"github.com/automoto/boardcam/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const configFile = "boardcam.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewBoardScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := cfg.LoadFile(configFile); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Best effort; the demo runs fine without saved settings.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: settings will not persist: %v", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
