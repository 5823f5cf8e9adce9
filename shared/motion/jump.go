package motion

// JumpPhase names the airborne sub-state implied by the jump flags.
type JumpPhase int

const (
	PhaseGrounded JumpPhase = iota
	PhaseRising
	PhaseHovering
	PhaseFalling
)

func (p JumpPhase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseRising:
		return "rising"
	case PhaseHovering:
		return "hovering"
	case PhaseFalling:
		return "falling"
	}
	return "unknown"
}

// Phase derives the jump phase from the player's flags and vertical speed.
// Hovering is upward motion after the jump key was let go.
func Phase(p *Player) JumpPhase {
	switch {
	case p == nil || p.Jump.OnFloor:
		return PhaseGrounded
	case p.Vel.Y > 0 && p.Jump.Jumping:
		return PhaseRising
	case p.Vel.Y > 0:
		return PhaseHovering
	default:
		return PhaseFalling
	}
}

// UpdateJump advances the jump state machine with the jump key level.
func UpdateJump(p *Player, held bool, t Tuning) {
	if p == nil {
		return
	}
	j := &p.Jump

	// Apex reached.
	if p.Vel.Y <= 0 {
		j.Jumping = false
	}

	if held {
		if j.JumpStarted {
			return
		}
		j.JumpStarted = true
		if j.OnFloor {
			p.Vel.Y = t.JumpSpeed
			j.Jumping = true
			j.OnFloor = false
		}
		return
	}

	j.JumpStarted = false
	if j.Jumping && p.Vel.Y > t.JumpHoverSpeed {
		p.Vel.Y = t.JumpHoverSpeed
	}
	j.Jumping = false
}
