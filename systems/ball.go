package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall integrates the ball and resolves wall bounces.
func UpdateBall(e *ecs.ECS) {
	if ball, ok := GetBall(e.World); ok {
		ball.Update()
	}
}
