package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/hopper/config"
)

func TestUpdateSettingsToggles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettings(e)

	press(e, cfg.ActionDebug)
	UpdateSettings(e)
	assert.True(t, settings.Debug)
	assert.True(t, settings.Dirty)

	// Holding the key does not toggle again.
	settings.Dirty = false
	press(e, cfg.ActionDebug)
	UpdateSettings(e)
	assert.True(t, settings.Debug)
	assert.False(t, settings.Dirty)

	press(e)
	press(e, cfg.ActionPanel)
	UpdateSettings(e)
	assert.True(t, settings.Panel)
	assert.False(t, settings.Quit)

	press(e, cfg.ActionQuit)
	UpdateSettings(e)
	assert.True(t, settings.Quit)
}

func TestGetOrCreateSettingsIsSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a := GetOrCreateSettings(e)
	a.Panel = true

	assert.True(t, GetOrCreateSettings(e).Panel)
}

func TestUpdatePersistenceClearsDirty(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	settings := GetOrCreateSettings(e)
	settings.Debug = true
	settings.Dirty = true

	// No store is open in tests, so saving is a no-op.
	UpdatePersistence(e)
	assert.False(t, settings.Dirty)
	assert.Equal(t, Preferences{Debug: true}, PreferencesFrom(settings))

	p, err := LoadPreferences()
	assert.NoError(t, err)
	assert.Nil(t, p)
}
