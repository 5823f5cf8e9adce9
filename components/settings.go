package components

import "github.com/yohamta/donburi"

// SettingsData holds overlay toggles for the running scene.
type SettingsData struct {
	Debug bool
	Panel bool
	Quit  bool
	// Dirty is set when a toggle changed and should be persisted.
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
