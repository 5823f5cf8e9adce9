package factory

import (
	"github.com/automoto/hopper/archetypes"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the render-side player. Its resolv box tracks the
// hitbox for the overlap view; the motion core never sees it.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.FrameWidth - cfg.Player.HitboxLeft - cfg.Player.HitboxRight)
	h := float64(cfg.Player.FrameHeight - cfg.Player.HitboxTop - cfg.Player.HitboxBottom)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Animation.Set(player, GenerateAnimations("player"))
	components.Sprite.SetValue(player, components.SpriteData{
		Tint:   cfg.Player.ColorFloor,
		ScaleX: 1,
		ScaleY: 1,
	})
	components.Squash.SetValue(player, components.SquashData{ScaleX: 1, ScaleY: 1})

	return player
}
