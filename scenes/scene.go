package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene is the unit the game loop drives. Update returns ebiten.Termination
// when the scene wants the game to exit.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
