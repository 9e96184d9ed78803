package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetInput stores the host's snapshot for the human paddle on side. It
// returns false when that side is AI controlled or does not exist.
func SetInput(w donburi.World, side cfg.Side, intent components.MovementIntent) bool {
	e, ok := GetPaddleEntry(w, side)
	if !ok || !e.HasComponent(components.Input) {
		return false
	}
	components.Input.Get(e).Intent = intent
	return true
}

// UpdatePaddles copies human input into the paddle intent, then moves every
// paddle. AI paddles carry no Input component, so their intent comes only
// from the controller.
func UpdatePaddles(e *ecs.ECS) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if entry.HasComponent(components.Input) {
			paddle.Intent = components.Input.Get(entry).Intent
		}
		paddle.Update()
	})
}
