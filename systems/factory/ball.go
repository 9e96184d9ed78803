package factory

import (
	"math/rand"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
)

// CreateBall spawns the match ball, stationary at the centre.
func CreateBall(w donburi.World, arena cfg.Arena, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Ball.Spawn(w)
	ball := components.NewBall(arena, rng)
	components.Ball.SetValue(entry, ball)

	// resolv maps boxes to cells with their far edge pulled in by one unit,
	// so the ball's object is padded to keep sub-pixel overlaps visible.
	addObject(w, entry, ball.X, ball.Y, ball.Size(), ball.Size(), cfg.Ball.BroadPhaseMargin, tags.ResolvBall)
	return entry
}
