package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/motion"
)

func TestSpriteState(t *testing.T) {
	res := gamemath.SubpixelRes
	cases := []struct {
		name string
		vel  motion.Velocity
		want cfg.StateID
	}{
		{"still", motion.Velocity{}, cfg.Idle},
		{"creeping", motion.Velocity{X: 10}, cfg.Idle},
		{"running right", motion.Velocity{X: 200}, cfg.Running},
		{"running left", motion.Velocity{X: -200}, cfg.Running},
		{"rising", motion.Velocity{X: 200, Y: 500}, cfg.Jump},
		{"falling", motion.Velocity{Y: -500}, cfg.Fall},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SpriteState(motion.Snapshot{Vel: c.vel}, res))
		})
	}
}

func TestStateTint(t *testing.T) {
	assert.Equal(t, cfg.Player.ColorFloor, StateTint(motion.Snapshot{Jump: motion.JumpState{OnFloor: true}}))
	assert.Equal(t, cfg.Player.ColorJump, StateTint(motion.Snapshot{Jump: motion.JumpState{Jumping: true}}))
	assert.Equal(t, cfg.Player.Color, StateTint(motion.Snapshot{}))

	prev := cfg.Player.Tint
	cfg.Player.Tint = false
	defer func() { cfg.Player.Tint = prev }()
	assert.Equal(t, cfg.White, StateTint(motion.Snapshot{Jump: motion.JumpState{OnFloor: true}}))
}
