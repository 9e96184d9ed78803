package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
)

// CreateHumanPaddle spawns a paddle driven by the host's input snapshots.
func CreateHumanPaddle(w donburi.World, side cfg.Side, arena cfg.Arena) *donburi.Entry {
	entry := archetypes.HumanPaddle.Spawn(w)
	setupPaddle(w, entry, side, arena)
	return entry
}

// CreateAIPaddle spawns a paddle driven by a controller at difficulty d.
func CreateAIPaddle(w donburi.World, side cfg.Side, arena cfg.Arena, d cfg.Difficulty, rng *rand.Rand) (*donburi.Entry, error) {
	ctrl, err := components.NewController(side, d, arena, rng)
	if err != nil {
		return nil, fmt.Errorf("create %s controller: %w", side, err)
	}

	entry := archetypes.AIPaddle.Spawn(w)
	setupPaddle(w, entry, side, arena)
	components.Controller.SetValue(entry, ctrl)
	return entry, nil
}

func setupPaddle(w donburi.World, entry *donburi.Entry, side cfg.Side, arena cfg.Arena) {
	paddle := components.NewPaddle(side, arena)
	components.Paddle.SetValue(entry, paddle)

	sideTag := tags.ResolvLeftPaddle
	if side == cfg.SideRight {
		sideTag = tags.ResolvRightPaddle
	}
	addObject(w, entry, paddle.X, paddle.Y, paddle.Width, paddle.Height, 0, tags.ResolvPaddle, sideTag)
}
