package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/boardcam/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the demo toggles stored on disk. Camera state
// itself (position, zoom, rotation) is deliberately not persisted.
type SavedSettings struct {
	Debug               bool `json:"debug"`
	LimitEntireViewPort bool `json:"limitEntireViewPort"`
	LineClamp           bool `json:"lineClamp"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "boardcam",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads the saved toggles from disk. A nil result with a nil
// error means no saved settings exist yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveCurrentSettings persists the toggles from the settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:               s.Debug,
		LimitEntireViewPort: s.LimitEntireViewPort,
		LineClamp:           s.LineClamp,
	}
	if err := saveSettings(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

func saveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem("settings", data)
}

// ApplySavedSettings copies loaded toggles onto the settings component.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.LimitEntireViewPort = saved.LimitEntireViewPort
	settings.LineClamp = saved.LineClamp
}
