// Package tuning loads motion constants from YAML. The embedded file is the
// stock feel; a file on disk may override it and be watched for edits.
package tuning

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/motion"
)

// ErrInvalid is returned for a tuning file that parses but cannot drive the
// controller.
var ErrInvalid = errors.New("invalid tuning")

// MaxSubpixelRes bounds subpixel_res so that screen-sized positions stay
// well inside the int32 fixed-point range.
const MaxSubpixelRes = 1 << 16

//go:embed tuning.yaml
var defaultYAML []byte

type LimitSpec struct {
	Enabled bool `yaml:"enabled"`
	Max     int  `yaml:"max"`
}

// Spec mirrors tuning.yaml.
type Spec struct {
	SubpixelRes      int       `yaml:"subpixel_res"`
	Accel            int       `yaml:"accel"`
	Friction         int       `yaml:"friction"`
	JumpSpeed        float64   `yaml:"jump_speed"`
	JumpHoverSpeed   float64   `yaml:"jump_hover_speed"`
	Gravity          float64   `yaml:"gravity"`
	TerminalVelocity int       `yaml:"terminal_velocity"`
	VelocityLimit    LimitSpec `yaml:"velocity_limit"`
	WallBounce       bool      `yaml:"wall_bounce"`
}

// Default returns the embedded tuning.
func Default() motion.Tuning {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("tuning: embedded default: %v", err))
	}
	return t
}

// Load reads path, or the embedded default when path is empty.
func Load(path string) (motion.Tuning, error) {
	if path == "" {
		return Parse(defaultYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return motion.Tuning{}, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return motion.Tuning{}, fmt.Errorf("tuning: %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML on top of the stock values, so a file only needs the
// keys it changes.
func Parse(data []byte) (motion.Tuning, error) {
	spec := specFrom(motion.DefaultTuning())
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return motion.Tuning{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return motion.Tuning{}, err
	}
	return spec.Tuning(), nil
}

// Validate rejects values the controller cannot run with, including any
// that would not fit the int32 fixed-point range once scaled.
func (s Spec) Validate() error {
	res := float64(s.SubpixelRes)
	switch {
	case s.SubpixelRes <= 0 || s.SubpixelRes > MaxSubpixelRes:
		return fmt.Errorf("%w: subpixel_res must be in 1..%d, got %d", ErrInvalid, MaxSubpixelRes, s.SubpixelRes)
	case s.Accel < 0 || s.Friction < 0:
		return fmt.Errorf("%w: accel and friction must not be negative", ErrInvalid)
	case !fitsFixed(float64(s.Accel)) || !fitsFixed(float64(s.Friction)):
		return fmt.Errorf("%w: accel and friction overflow", ErrInvalid)
	case !finite(s.JumpSpeed) || !finite(s.JumpHoverSpeed) || !finite(s.Gravity):
		return fmt.Errorf("%w: jump speeds and gravity must be finite", ErrInvalid)
	case s.JumpSpeed < 0 || s.JumpHoverSpeed < 0:
		return fmt.Errorf("%w: jump speeds must not be negative", ErrInvalid)
	case s.JumpHoverSpeed > s.JumpSpeed:
		return fmt.Errorf("%w: jump_hover_speed %.2f exceeds jump_speed %.2f", ErrInvalid, s.JumpHoverSpeed, s.JumpSpeed)
	case !fitsFixed(s.JumpSpeed * res):
		return fmt.Errorf("%w: jump_speed %.2f overflows at subpixel_res %d", ErrInvalid, s.JumpSpeed, s.SubpixelRes)
	case s.Gravity < 0 || s.TerminalVelocity < 0:
		return fmt.Errorf("%w: gravity and terminal_velocity must not be negative", ErrInvalid)
	case !fitsFixed(float64(s.TerminalVelocity) * res):
		return fmt.Errorf("%w: terminal_velocity %d overflows at subpixel_res %d", ErrInvalid, s.TerminalVelocity, s.SubpixelRes)
	case s.VelocityLimit.Enabled && s.VelocityLimit.Max <= 0:
		return fmt.Errorf("%w: velocity_limit.max must be positive when enabled", ErrInvalid)
	case s.VelocityLimit.Max < 0 || !fitsFixed(float64(s.VelocityLimit.Max)):
		return fmt.Errorf("%w: velocity_limit.max %d out of range", ErrInvalid, s.VelocityLimit.Max)
	}
	return nil
}

func fitsFixed(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Tuning converts the spec into controller units.
func (s Spec) Tuning() motion.Tuning {
	res := gamemath.Fixed(s.SubpixelRes)
	return motion.Tuning{
		SubpixelRes:      res,
		Accel:            gamemath.Fixed(s.Accel),
		Friction:         gamemath.Fixed(s.Friction),
		JumpSpeed:        gamemath.PixelsF(s.JumpSpeed, res),
		JumpHoverSpeed:   gamemath.PixelsF(s.JumpHoverSpeed, res),
		GravityAccel:     s.Gravity,
		TerminalVelocity: gamemath.Fixed(s.TerminalVelocity),
		VelocityLimit: motion.VelocityLimit{
			Enabled: s.VelocityLimit.Enabled,
			Max:     gamemath.Fixed(s.VelocityLimit.Max),
		},
		WallBounce: s.WallBounce,
	}
}

func specFrom(t motion.Tuning) Spec {
	res := t.SubpixelRes
	return Spec{
		SubpixelRes:      int(res),
		Accel:            int(t.Accel),
		Friction:         int(t.Friction),
		JumpSpeed:        t.JumpSpeed.Float(res),
		JumpHoverSpeed:   t.JumpHoverSpeed.Float(res),
		Gravity:          t.GravityAccel,
		TerminalVelocity: int(t.TerminalVelocity),
		VelocityLimit: LimitSpec{
			Enabled: t.VelocityLimit.Enabled,
			Max:     int(t.VelocityLimit.Max),
		},
		WallBounce: t.WallBounce,
	}
}
