// Package motion is the per-frame character controller: input mapping,
// jump state, gravity, subpixel integration and axis-separated collision
// against world bounds. It is engine-agnostic; the ebiten side feeds it an
// Input and a frame delta and draws whatever Project returns.
//
// Coordinates are y-up with the origin at the centre of the world.
package motion

import "github.com/automoto/hopper/shared/gamemath"

// Position is a subpixel coordinate.
type Position struct {
	X, Y gamemath.Fixed
}

// Velocity is in subpixel units per frame.
type Velocity struct {
	X, Y gamemath.Fixed
}

// JumpState carries the flags of the jump state machine.
type JumpState struct {
	OnFloor bool
	// Jumping is true from the jump impulse until the apex or the key release.
	Jumping bool
	// JumpStarted debounces a held jump key so it fires once per press.
	JumpStarted bool
}

// Player is the single controllable body.
type Player struct {
	Pos  Position
	Vel  Velocity
	Jump JumpState
}

// NewPlayer returns a grounded, motionless player at spawn.
func NewPlayer(spawn Position) *Player {
	return &Player{
		Pos:  spawn,
		Jump: JumpState{OnFloor: true},
	}
}

// Bounds is the inclusive region the player's centre may occupy.
type Bounds struct {
	MinX, MaxX gamemath.Fixed
	MinY, MaxY gamemath.Fixed
}

// NewBounds builds bounds for a world of the given half extents, shrunk on
// every edge by margin (the player's collision half-extent).
func NewBounds(halfW, halfH, margin gamemath.Fixed) Bounds {
	b := Bounds{
		MinX: -halfW + margin,
		MaxX: halfW - margin,
		MinY: -halfH + margin,
		MaxY: halfH - margin,
	}
	// A world smaller than the player collapses to its centre line.
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = 0, 0
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = 0, 0
	}
	return b
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// GameState is everything the pipeline touches during a frame. The owner
// passes it by exclusive reference to Step once per tick.
type GameState struct {
	// Player may be nil, in which case every phase is a no-op.
	Player *Player
	Bounds Bounds
	Tuning Tuning
	// Collider overrides the default bounds resolver when set.
	Collider Collider
}

// NewGameState spawns a player on the floor at horizontal centre.
func NewGameState(bounds Bounds, tuning Tuning) *GameState {
	return &GameState{
		Player: NewPlayer(Position{X: 0, Y: bounds.MinY}),
		Bounds: bounds,
		Tuning: tuning,
	}
}

func (s *GameState) collider() Collider {
	if s.Collider != nil {
		return s.Collider
	}
	return BoundsCollider{Bounds: s.Bounds, Bounce: s.Tuning.WallBounce}
}
