package components

import (
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/motion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlayerData mirrors the motion core's player for the render side. It is
// written by the motion system and never read back into the core.
type PlayerData struct {
	Snapshot motion.Snapshot
	Valid    bool
	// Res is the subpixel resolution the snapshot is expressed in.
	Res gamemath.Fixed
	// Landed is true on the tick the player touched the floor.
	Landed bool
	// Overlaps lists tiles the hitbox intersects, for the debug view only.
	Overlaps []*resolv.Object
}

var Player = donburi.NewComponentType[PlayerData]()
