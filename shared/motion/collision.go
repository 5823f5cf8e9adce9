package motion

import "github.com/automoto/hopper/shared/gamemath"

// Collider resolves penetration one axis at a time, X before Y. ResolveY
// owns the OnFloor flag: it clears it and sets it again only on a hit with
// ground below.
type Collider interface {
	ResolveX(p *Player)
	ResolveY(p *Player)
}

// BoundsCollider keeps the player inside a rectangle. The tile map is not
// consulted.
type BoundsCollider struct {
	Bounds Bounds
	// Bounce reflects vx off the side walls instead of stopping it.
	Bounce bool
}

func (c BoundsCollider) ResolveX(p *Player) {
	if p == nil {
		return
	}
	b := c.Bounds
	switch {
	case p.Pos.X > b.MaxX:
		p.Pos.X = b.MaxX
		p.Vel.X = c.wallVelocity(p.Vel.X)
	case p.Pos.X < b.MinX:
		p.Pos.X = b.MinX
		p.Vel.X = c.wallVelocity(p.Vel.X)
	}
}

func (c BoundsCollider) ResolveY(p *Player) {
	if p == nil {
		return
	}
	b := c.Bounds
	p.Jump.OnFloor = false

	switch {
	case p.Pos.Y > b.MaxY:
		p.Pos.Y = b.MaxY
		p.Vel.Y = 0
	case p.Pos.Y <= b.MinY:
		// Resting exactly on the floor counts as contact so a grounded
		// player with vy == 0 stays grounded.
		p.Pos.Y = b.MinY
		p.Vel.Y = 0
		p.Jump.OnFloor = true
	}
}

func (c BoundsCollider) wallVelocity(v gamemath.Fixed) gamemath.Fixed {
	if c.Bounce {
		return gamemath.Neg(v)
	}
	return 0
}
