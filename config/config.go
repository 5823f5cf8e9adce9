package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// TPS is the fixed update rate.
const TPS = 60

// TimeModel selects how elapsed time reaches the gravity phase.
type TimeModel int

const (
	// TimeFixed feeds gravity exactly 1/TPS every tick.
	TimeFixed TimeModel = iota
	// TimeElapsed feeds gravity the measured wall-clock time between ticks.
	TimeElapsed
)

func (m TimeModel) String() string {
	if m == TimeElapsed {
		return "elapsed"
	}
	return "fixed"
}

// ParseTimeModel accepts "fixed" or "elapsed".
func ParseTimeModel(s string) (TimeModel, bool) {
	switch s {
	case "fixed", "":
		return TimeFixed, true
	case "elapsed":
		return TimeElapsed, true
	}
	return TimeFixed, false
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	// Scale is the window size multiplier over the logical resolution.
	Scale int
}

// WorldConfig describes the playfield in display pixels.
type WorldConfig struct {
	TileSize int
	// Margin keeps the player's centre this far from the side and top edges.
	Margin int
	// FloorInset raises the floor above the bottom screen edge. The side and
	// top bounds stay at the screen edges less Margin.
	FloorInset int
	LevelDir   string
	Level      string
}

// PlayerConfig contains the player's visual configuration
type PlayerConfig struct {
	FrameWidth  int
	FrameHeight int

	// Hitbox insets from the sprite frame
	HitboxTop, HitboxLeft, HitboxRight, HitboxBottom int

	Color      color.RGBA // airborne
	ColorJump  color.RGBA // rising with the jump key held
	ColorFloor color.RGBA // grounded
	Tint       bool

	// Velocity, in pixels per frame, below which the sprite counts as still
	MoveThreshold float64
}

// SquashStretchConfig contains the landing squash effect configuration
type SquashStretchConfig struct {
	LandScaleX float32 // horizontal scale on land (> 1 = wider)
	LandScaleY float32 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to return to normal scale
}

// UIConfig contains HUD and overlay colours
type UIConfig struct {
	Background  color.RGBA
	TileColor   color.RGBA
	TileEdge    color.RGBA
	HitboxColor color.RGBA
	OverlapFill color.RGBA
	BoundsColor color.RGBA

	HUDFontSize  float64
	HUDTextColor color.RGBA

	PanelBackground color.RGBA
	PanelText       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
}

// MotionConfig selects runtime behaviour of the motion core
type MotionConfig struct {
	TimeModel TimeModel
	// TuningPath is an optional YAML file overriding the embedded tuning.
	TuningPath string
	// Watch reloads TuningPath when it changes.
	Watch bool
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled bool // start with the overlay visible
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var SquashStretch SquashStretchConfig
var UI UIConfig
var Motion MotionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 288,
		Scale:  2,
	}

	World = WorldConfig{
		TileSize:   32,
		Margin:     16, // half the sprite frame
		FloorInset: 32, // one tile row
		LevelDir:   "levels",
		Level:      "steps.txt",
	}

	Player = PlayerConfig{
		FrameWidth:  32,
		FrameHeight: 32,

		HitboxTop:    6,
		HitboxLeft:   6,
		HitboxRight:  6,
		HitboxBottom: 0,

		Color:      Blue,
		ColorJump:  Magenta,
		ColorFloor: Cyan,
		Tint:       true,

		MoveThreshold: 0.2,
	}

	SquashStretch = SquashStretchConfig{
		LandScaleX: 1.25,
		LandScaleY: 0.75,
		Duration:   0.15,
	}

	UI = UIConfig{
		Background:  color.RGBA{R: 24, G: 20, B: 37, A: 255},
		TileColor:   color.RGBA{R: 90, G: 105, B: 136, A: 255},
		TileEdge:    color.RGBA{R: 139, G: 155, B: 180, A: 255},
		HitboxColor: White,
		OverlapFill: color.RGBA{R: 255, G: 80, B: 80, A: 110},
		BoundsColor: color.RGBA{R: 255, G: 255, B: 0, A: 90},

		HUDFontSize:  10,
		HUDTextColor: White,

		PanelBackground: BlackOverlay,
		PanelText:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 60, B: 100, A: 255},
	}

	Motion = MotionConfig{
		TimeModel: TimeFixed,
	}
}
