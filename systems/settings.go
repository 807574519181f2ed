package systems

import (
	"github.com/automoto/boardcam/archetypes"
	"github.com/automoto/boardcam/components"
	cfg "github.com/automoto/boardcam/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, spawning it with the
// configured startup modes on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(e)
	components.Settings.Set(entry, &components.SettingsData{
		LimitEntireViewPort: cfg.Camera.LimitEntireViewPort,
		LineClamp:           cfg.Camera.LineClamp,
	})
	return components.Settings.Get(entry)
}
