package systems

import (
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControllers lets every AI controller set its paddle's intent.
// Must run BEFORE UpdatePaddles.
func UpdateControllers(e *ecs.ECS) {
	ball, ok := GetBall(e.World)
	if !ok {
		return
	}
	now := Now(e.World)

	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		ctrl := components.Controller.Get(entry)
		paddle := components.Paddle.Get(entry)
		ctrl.Update(ball, paddle, now)
	})
}

// ResetControllers clears aim state and intent of every AI paddle.
func ResetControllers(w donburi.World) {
	components.Controller.Each(w, func(e *donburi.Entry) {
		components.Controller.Get(e).Reset(components.Paddle.Get(e))
	})
}
