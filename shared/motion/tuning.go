package motion

import "github.com/automoto/hopper/shared/gamemath"

// VelocityLimit is the optional symmetric clamp on both velocity axes.
type VelocityLimit struct {
	Enabled bool
	Max     gamemath.Fixed
}

// Tuning holds the controller constants. Horizontal and jump values are
// per-frame subpixel amounts; gravity is a per-second rate scaled by dt.
type Tuning struct {
	SubpixelRes gamemath.Fixed

	Accel    gamemath.Fixed
	Friction gamemath.Fixed

	JumpSpeed      gamemath.Fixed
	JumpHoverSpeed gamemath.Fixed

	// GravityAccel is in pixels per frame, per second.
	GravityAccel float64
	// TerminalVelocity is in pixels per frame.
	TerminalVelocity gamemath.Fixed

	VelocityLimit VelocityLimit
	// WallBounce reflects vx on a horizontal wall hit instead of zeroing it.
	WallBounce bool
}

// DefaultTuning returns the stock controller feel at 60 ticks per second.
func DefaultTuning() Tuning {
	res := gamemath.SubpixelRes
	return Tuning{
		SubpixelRes:      res,
		Accel:            10,
		Friction:         30,
		JumpSpeed:        12 * res,
		JumpHoverSpeed:   3 * res,
		GravityAccel:     48,
		TerminalVelocity: 9,
		VelocityLimit: VelocityLimit{
			Enabled: false,
			Max:     512,
		},
	}
}

// TerminalSpeed is the largest downward speed gravity may produce, in
// subpixel units per frame. It never goes negative.
func (t Tuning) TerminalSpeed() gamemath.Fixed {
	v := gamemath.SatMul(t.TerminalVelocity, t.SubpixelRes)
	if v < 0 {
		return 0
	}
	return v
}
