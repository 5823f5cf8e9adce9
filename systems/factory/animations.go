package factory

import (
	"fmt"

	"github.com/automoto/hopper/assets"
	"github.com/automoto/hopper/assets/animations"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// which maps to a set of animation definitions in config.
func GenerateAnimations(key string) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations: make(map[cfg.StateID]*animations.Animation, len(defs)),
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		// warm the frame cache
		_ = assets.GetSheet(state)
	}
	animData.SetAnimation(cfg.Idle)

	return animData
}
