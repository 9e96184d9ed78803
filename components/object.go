package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's box in the collision space. The object is
// grown by Margin on every side; the entity's own box stays exact.
type ObjectData struct {
	*resolv.Object
	Margin float64
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the per-match collision space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
