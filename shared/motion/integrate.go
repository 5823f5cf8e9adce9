package motion

import "github.com/automoto/hopper/shared/gamemath"

// LimitVelocity applies the optional symmetric velocity clamp.
func LimitVelocity(p *Player, l VelocityLimit) {
	if p == nil || !l.Enabled {
		return
	}
	p.Vel.X = gamemath.ClampSpeed(p.Vel.X, l.Max)
	p.Vel.Y = gamemath.ClampSpeed(p.Vel.Y, l.Max)
}

// Integrate advances the position by one frame of velocity. It does not
// clamp; the collider runs next.
func Integrate(p *Player) {
	if p == nil {
		return
	}
	p.Pos.X = gamemath.SatAdd(p.Pos.X, p.Vel.X)
	p.Pos.Y = gamemath.SatAdd(p.Pos.Y, p.Vel.Y)
}
