package systems

import (
	"image/color"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/motion"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks the sprite state, facing and tint from the
// player's latest snapshot and steps the active animation.
func UpdateAnimations(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)
	if !pd.Valid {
		return
	}

	anim := components.Animation.Get(playerEntry)
	anim.SetAnimation(SpriteState(pd.Snapshot, pd.Res))
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}

	sprite := components.Sprite.Get(playerEntry)
	switch {
	case pd.Snapshot.Vel.X < 0:
		sprite.FlipX = true
	case pd.Snapshot.Vel.X > 0:
		sprite.FlipX = false
	}
	sprite.Tint = StateTint(pd.Snapshot)
}

// SpriteState chooses Jump while moving up, Fall while moving down, Run
// while moving sideways and Idle otherwise. Speeds below the configured
// threshold count as still.
func SpriteState(s motion.Snapshot, res gamemath.Fixed) cfg.StateID {
	th := gamemath.PixelsF(cfg.Player.MoveThreshold, res)
	switch {
	case s.Vel.Y > th:
		return cfg.Jump
	case s.Vel.Y < -th:
		return cfg.Fall
	case s.Vel.X > th || s.Vel.X < -th:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

// StateTint colours the sprite by jump state.
func StateTint(s motion.Snapshot) color.RGBA {
	if !cfg.Player.Tint {
		return cfg.White
	}
	switch {
	case s.Jump.OnFloor:
		return cfg.Player.ColorFloor
	case s.Jump.Jumping:
		return cfg.Player.ColorJump
	default:
		return cfg.Player.Color
	}
}
