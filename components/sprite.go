package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is how the player sprite is drawn this frame.
type SpriteData struct {
	FlipX  bool
	Tint   color.RGBA
	ScaleX float64
	ScaleY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
