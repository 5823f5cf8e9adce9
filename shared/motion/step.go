package motion

import (
	"fmt"

	"github.com/automoto/hopper/shared/gamemath"
)

// Display is a position in whole display pixels, still centred and y-up.
type Display struct {
	X, Y int
}

// Project converts a subpixel position to display pixels, truncating
// toward zero. It is pure.
func Project(pos Position, res gamemath.Fixed) Display {
	return Display{X: pos.X.ToPixels(res), Y: pos.Y.ToPixels(res)}
}

// Step runs one frame of the pipeline: input, jump, gravity, velocity
// limit, integration, X then Y collision. It reports the projected
// position, or false when there is no player.
func Step(s *GameState, in Input, dt float64) (Display, bool) {
	if s == nil || s.Player == nil {
		return Display{}, false
	}
	p := s.Player
	t := s.Tuning

	ApplyDrive(p, MapInput(in), t)
	UpdateJump(p, in.Jump, t)
	ApplyGravity(p, t, dt)
	LimitVelocity(p, t.VelocityLimit)
	Integrate(p)

	c := s.collider()
	c.ResolveX(p)
	c.ResolveY(p)

	return Project(p.Pos, t.SubpixelRes), true
}

// Snapshot is a read-only copy of the player for overlays.
type Snapshot struct {
	Pos     Position
	Vel     Velocity
	Display Display
	Jump    JumpState
	Phase   JumpPhase
}

// Snapshot copies the current player state. ok is false with no player.
func (s *GameState) Snapshot() (snap Snapshot, ok bool) {
	if s == nil || s.Player == nil {
		return Snapshot{}, false
	}
	p := s.Player
	return Snapshot{
		Pos:     p.Pos,
		Vel:     p.Vel,
		Display: Project(p.Pos, s.Tuning.SubpixelRes),
		Jump:    p.Jump,
		Phase:   Phase(p),
	}, true
}

func (s Snapshot) String() string {
	return fmt.Sprintf("Pos: (%d,%d) V: (%d,%d)\nIoF: %t jumping: %t %s",
		s.Pos.X, s.Pos.Y, s.Vel.X, s.Vel.Y, s.Jump.OnFloor, s.Jump.Jumping, s.Phase)
}
