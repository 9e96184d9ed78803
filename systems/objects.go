package systems

import (
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects copies ball and paddle boxes into their collision objects.
// Must run after anything that moves them and before UpdateCollisions.
func UpdateObjects(e *ecs.ECS) {
	syncObjects(e.World)
}

func syncObjects(w donburi.World) {
	components.Ball.Each(w, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		syncObject(e, ball.X, ball.Y)
	})
	components.Paddle.Each(w, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		syncObject(e, paddle.X, paddle.Y)
	})
}

func syncObject(e *donburi.Entry, x, y float64) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.X = x - obj.Margin
	obj.Y = y - obj.Margin
	obj.Update()
}
