package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData drives the landing squash. Progress tweens from 0 to 1 and
// the sprite scale is interpolated from the squashed shape back to 1.
type SquashData struct {
	Tween  *gween.Tween
	ScaleX float32
	ScaleY float32
}

var Squash = donburi.NewComponentType[SquashData]()
