package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/hopper/shared/gamemath"
)

func TestJumpImpulseFromGround(t *testing.T) {
	tn := DefaultTuning()
	p := NewPlayer(Position{})

	UpdateJump(p, true, tn)

	assert.Equal(t, tn.JumpSpeed, p.Vel.Y)
	assert.False(t, p.Jump.OnFloor)
	assert.True(t, p.Jump.Jumping)
	assert.True(t, p.Jump.JumpStarted)
}

func TestJumpHeldAddsNoFurtherImpulse(t *testing.T) {
	s := createTestState()
	tn := s.Tuning

	_, _ = Step(s, Input{Jump: true}, testDT)
	require.False(t, s.Player.Jump.OnFloor)
	prev := s.Player.Vel.Y
	assert.Less(t, prev, tn.JumpSpeed+1)

	for i := 0; i < 5; i++ {
		_, _ = Step(s, Input{Jump: true}, testDT)
		assert.Less(t, s.Player.Vel.Y, prev, "frame %d", i)
		prev = s.Player.Vel.Y
	}
}

func TestJumpRequiresFloor(t *testing.T) {
	tn := DefaultTuning()
	p := &Player{Vel: Velocity{Y: -200}}

	UpdateJump(p, true, tn)

	assert.Equal(t, gamemath.Fixed(-200), p.Vel.Y)
	assert.False(t, p.Jump.Jumping)
	assert.True(t, p.Jump.JumpStarted)
}

func TestJumpDebounce(t *testing.T) {
	tn := DefaultTuning()
	p := NewPlayer(Position{})
	p.Jump.JumpStarted = true

	UpdateJump(p, true, tn)

	assert.Equal(t, gamemath.Fixed(0), p.Vel.Y)
	assert.True(t, p.Jump.OnFloor)
}

func TestShortHopClampsToHoverSpeed(t *testing.T) {
	s := createTestState()
	tn := s.Tuning

	_, _ = Step(s, Input{Jump: true}, testDT)
	require.Greater(t, s.Player.Vel.Y, tn.JumpHoverSpeed)

	UpdateJump(s.Player, false, tn)
	assert.Equal(t, tn.JumpHoverSpeed, s.Player.Vel.Y)
	assert.False(t, s.Player.Jump.Jumping)
	assert.False(t, s.Player.Jump.JumpStarted)

	// Pressing again mid-air must not raise vy.
	prev := s.Player.Vel.Y
	for i := 0; i < 20 && !s.Player.Jump.OnFloor; i++ {
		_, _ = Step(s, Input{Jump: i%2 == 0}, testDT)
		if s.Player.Jump.OnFloor {
			break
		}
		assert.LessOrEqual(t, s.Player.Vel.Y, prev)
		prev = s.Player.Vel.Y
	}
}

func TestReleaseBelowHoverSpeedKeepsVelocity(t *testing.T) {
	tn := DefaultTuning()
	p := &Player{
		Vel:  Velocity{Y: tn.JumpHoverSpeed - 50},
		Jump: JumpState{Jumping: true, JumpStarted: true},
	}

	UpdateJump(p, false, tn)

	assert.Equal(t, tn.JumpHoverSpeed-50, p.Vel.Y)
	assert.False(t, p.Jump.Jumping)
}

func TestApexClearsJumping(t *testing.T) {
	tn := DefaultTuning()
	p := &Player{
		Vel:  Velocity{Y: 0},
		Jump: JumpState{Jumping: true, JumpStarted: true},
	}

	UpdateJump(p, true, tn)
	assert.False(t, p.Jump.Jumping)

	// Release after the apex never touches vy.
	p.Vel.Y = -300
	UpdateJump(p, false, tn)
	assert.Equal(t, gamemath.Fixed(-300), p.Vel.Y)
}

func TestPhase(t *testing.T) {
	cases := []struct {
		name string
		p    Player
		want JumpPhase
	}{
		{"grounded", Player{Jump: JumpState{OnFloor: true}}, PhaseGrounded},
		{"rising", Player{Vel: Velocity{Y: 100}, Jump: JumpState{Jumping: true}}, PhaseRising},
		{"hovering", Player{Vel: Velocity{Y: 100}}, PhaseHovering},
		{"falling", Player{Vel: Velocity{Y: -1}}, PhaseFalling},
		{"apex", Player{}, PhaseFalling},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.p
			assert.Equal(t, c.want, Phase(&p))
		})
	}
}

func TestJumpPhaseString(t *testing.T) {
	assert.Equal(t, "grounded", PhaseGrounded.String())
	assert.Equal(t, "rising", PhaseRising.String())
	assert.Equal(t, "hovering", PhaseHovering.String())
	assert.Equal(t, "falling", PhaseFalling.String())
	assert.Equal(t, "unknown", JumpPhase(42).String())
}
