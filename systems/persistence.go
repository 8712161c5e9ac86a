package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/emberforge/cinder/config"
)

// SavedSettings is the playground state restored across runs.
type SavedSettings struct {
	Preset int  `json:"preset"`
	Paused bool `json:"paused"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. Failure is non-fatal: the
// playground runs fine without saved settings.
func InitPersistence() {
	m, err := gdata.Open(gdata.Config{
		AppName: "cinder",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return
	}
	gdataManager = m
}

// LoadSettings loads the saved playground state, or nil if there is none.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	if settings.Preset < 0 || settings.Preset >= int(cfg.PresetCount) {
		settings.Preset = int(cfg.PresetFire)
	}
	return &settings
}

// SaveSettings persists the playground state to disk.
func SaveSettings(s *SavedSettings) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
