package factory

import (
	"math"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision space. Cells are as wide as the ball
// radius so the broad phase stays tight around the ball.
func CreateSpace(w donburi.World, arena cfg.Arena) *donburi.Entry {
	cell := int(math.Max(1, math.Floor(arena.BallRadius())))
	width := int(math.Ceil(arena.Width()))
	height := int(math.Ceil(arena.Height()))

	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{
		Space: resolv.NewSpace(width, height, cell, cell),
	})
	return space
}

// addObject creates a collision object for entry, grown by margin on every
// side, and adds it to the space.
func addObject(w donburi.World, entry *donburi.Entry, x, y, width, height, margin float64, objTags ...string) {
	width += 2 * margin
	height += 2 * margin
	obj := resolv.NewObject(x-margin, y-margin, width, height, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj, Margin: margin})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
