package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/hopper/assets"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/motion"
	"github.com/automoto/hopper/shared/tuning"
	"github.com/automoto/hopper/systems"
	factory2 "github.com/automoto/hopper/systems/factory"
	"github.com/automoto/hopper/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level with one controllable player. The motion
// state lives here; the ECS world only mirrors it for drawing.
type PlatformerScene struct {
	ecs     *ecs.ECS
	state   *motion.GameState
	motion  *systems.MotionSystem
	panel   *ui.DebugPanel
	watcher *tuning.Watcher
	prefs   *systems.Preferences
	once    sync.Once
	err     error
}

// NewPlatformerScene creates the scene. prefs may be nil.
func NewPlatformerScene(prefs *systems.Preferences) *PlatformerScene {
	return &PlatformerScene{prefs: prefs}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}

	ps.ecs.Update()

	settings := systems.GetOrCreateSettings(ps.ecs)
	ps.panel.Update(settings)

	if settings.Quit {
		ps.Close()
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.panel.Draw(systems.GetOrCreateSettings(ps.ecs), screen)
}

// Close stops the tuning watcher if one is running.
func (ps *PlatformerScene) Close() {
	if ps.watcher != nil {
		if err := ps.watcher.Close(); err != nil {
			log.Printf("Warning: closing tuning watcher: %v", err)
		}
	}
}

func (ps *PlatformerScene) configure() error {
	if err := assets.LoadShaders(); err != nil {
		return fmt.Errorf("load shaders: %w", err)
	}
	assets.PreloadAllAnimations()

	t, err := tuning.Load(cfg.Motion.TuningPath)
	if err != nil {
		return err
	}

	level, err := assets.LoadLevel(nil, cfg.World.Level)
	if err != nil {
		return err
	}
	log.Printf("Loaded level %s (%dx%d)", level.Name, level.Cols, level.Rows)

	ps.state = motion.NewGameState(systems.WorldBounds(t.SubpixelRes), t)
	ps.motion = systems.NewMotionSystem(ps.state, systems.NewClock(cfg.Motion.TimeModel))

	if cfg.Motion.Watch && cfg.Motion.TuningPath != "" {
		w, err := tuning.Watch(cfg.Motion.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Motion.TuningPath, err)
		} else {
			ps.watcher = w
			log.Printf("Watching tuning file %s", w.Path())
			ps.motion.Reloads = w.Updates
			ps.motion.ReloadErrors = w.Errors
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(ps.motion.Update)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateSquash)
	ecs.AddSystem(systems.UpdateOverlap)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.NewDrawDebug(ps.state, ps.motion.Clock))
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	// The space covers the map in map pixels.
	factory2.CreateSpace(ps.ecs, level.Width(), level.Height(), level.TileSize, level.TileSize)
	factory2.CreateLevel(ps.ecs, level)
	for _, r := range level.SolidRects() {
		factory2.CreateTile(ps.ecs, r.X, r.Y, r.W, r.H)
	}
	factory2.CreateCamera(ps.ecs)

	settings := components.SettingsData{Debug: cfg.Debug.Enabled}
	if ps.prefs != nil {
		settings.Debug = settings.Debug || ps.prefs.Debug
		settings.Panel = ps.prefs.Panel
	}
	factory2.CreateSettings(ps.ecs, settings)

	factory2.CreatePlayer(ps.ecs)

	ps.panel = ui.NewDebugPanel(ps.state)

	return nil
}
