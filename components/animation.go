package components

import (
	"github.com/automoto/hopper/assets/animations"
	"github.com/automoto/hopper/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation for state, restarting it only when
// the state actually changes.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}
	a.CurrentSheet = state
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	anim.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
