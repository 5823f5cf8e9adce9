package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquash starts a squash on landing and eases the sprite scale back
// to 1 over the configured duration.
func UpdateSquash(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)
	sq := components.Squash.Get(playerEntry)

	if pd.Landed {
		StartSquash(sq)
	}
	StepSquash(sq, 1/float32(cfg.TPS))

	sprite := components.Sprite.Get(playerEntry)
	sprite.ScaleX = float64(sq.ScaleX)
	sprite.ScaleY = float64(sq.ScaleY)
}

func StartSquash(sq *components.SquashData) {
	sq.Tween = gween.New(0, 1, cfg.SquashStretch.Duration, ease.OutQuad)
	sq.ScaleX = cfg.SquashStretch.LandScaleX
	sq.ScaleY = cfg.SquashStretch.LandScaleY
}

// StepSquash advances the tween by dt seconds.
func StepSquash(sq *components.SquashData, dt float32) {
	if sq.Tween == nil {
		sq.ScaleX, sq.ScaleY = 1, 1
		return
	}
	progress, done := sq.Tween.Update(dt)
	sq.ScaleX = lerp(cfg.SquashStretch.LandScaleX, 1, progress)
	sq.ScaleY = lerp(cfg.SquashStretch.LandScaleY, 1, progress)
	if done {
		sq.Tween = nil
		sq.ScaleX, sq.ScaleY = 1, 1
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
