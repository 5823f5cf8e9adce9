package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space indexes tile and player boxes for the debug overlap view.
var Space = donburi.NewComponentType[resolv.Space]()
