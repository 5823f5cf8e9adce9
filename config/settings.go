package config

// PrefsConfig names where overlay preferences are stored between runs.
type PrefsConfig struct {
	AppName string
	Key     string
}

// Prefs is the global preferences storage configuration
var Prefs PrefsConfig

func init() {
	Prefs = PrefsConfig{
		AppName: "hopper",
		Key:     "prefs",
	}
}
