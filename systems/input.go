package systems

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(e)
	components.Input.Set(entry, &components.InputData{})
	return components.Input.Get(entry)
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// UpdateInput samples the keyboard and mouse into the input singleton once
// per tick. All fields are recomputed every frame.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	*input = components.InputData{}

	if anyKeyPressed(cfg.Keys.PanLeft) {
		input.PanX -= 1
	}
	if anyKeyPressed(cfg.Keys.PanRight) {
		input.PanX += 1
	}
	if anyKeyPressed(cfg.Keys.PanUp) {
		input.PanY -= 1
	}
	if anyKeyPressed(cfg.Keys.PanDown) {
		input.PanY += 1
	}

	_, wheelY := ebiten.Wheel()
	input.ZoomDelta = wheelY * cfg.Camera.ZoomStep

	if ebiten.IsKeyPressed(cfg.Keys.RotateCCW) {
		input.RotateDelta += cfg.Camera.RotateStep
	}
	if ebiten.IsKeyPressed(cfg.Keys.RotateCW) {
		input.RotateDelta -= cfg.Camera.RotateStep
	}

	input.ToggleDebug = inpututil.IsKeyJustPressed(cfg.Keys.ToggleDebug)
	input.ToggleLimit = inpututil.IsKeyJustPressed(cfg.Keys.ToggleLimit)
	input.ToggleClamp = inpututil.IsKeyJustPressed(cfg.Keys.ToggleClamp)
	input.ResetView = inpututil.IsKeyJustPressed(cfg.Keys.ResetView)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Clicked = true
		input.CursorX, input.CursorY = ebiten.CursorPosition()
	}
}
