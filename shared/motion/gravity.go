package motion

import (
	"math"

	"github.com/automoto/hopper/shared/gamemath"
)

// ApplyGravity pulls vy down by GravityAccel*dt while airborne and stops at
// terminal velocity. Grounded players are left alone.
func ApplyGravity(p *Player, t Tuning, dt float64) {
	if p == nil || p.Jump.OnFloor {
		return
	}
	if dt < 0 {
		dt = 0
	}

	dv := gamemath.FromFloat(math.Round(t.GravityAccel * float64(t.SubpixelRes) * dt))
	vy := gamemath.SatAdd(p.Vel.Y, gamemath.Neg(dv))

	if floor := -t.TerminalSpeed(); vy < floor {
		vy = floor
	}
	p.Vel.Y = vy
}
