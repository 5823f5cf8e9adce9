package components

import (
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map *leveldata.TileMap
}

var Level = donburi.NewComponentType[LevelData]()
