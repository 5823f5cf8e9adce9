package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Tile   = donburi.NewTag().SetName("Tile")
)

// Resolv tags for the debug overlap space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
