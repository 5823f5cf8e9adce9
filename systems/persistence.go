package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// Preferences are the overlay toggles remembered between runs.
type Preferences struct {
	Debug bool `json:"debug"`
	Panel bool `json:"panel"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the preferences store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Prefs.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadPreferences returns nil with no error when nothing is stored yet or
// persistence is unavailable.
func LoadPreferences() (*Preferences, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem(cfg.Prefs.Key)
	if err != nil || data == nil {
		return nil, err
	}
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func SavePreferences(p Preferences) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(cfg.Prefs.Key, data)
}

// UpdatePersistence writes the toggles after they change.
func UpdatePersistence(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	if err := SavePreferences(PreferencesFrom(settings)); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}

func PreferencesFrom(s *components.SettingsData) Preferences {
	return Preferences{Debug: s.Debug, Panel: s.Panel}
}
