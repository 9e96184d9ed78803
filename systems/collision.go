package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// paddleOrder is the fixed order paddles are tested in.
var paddleOrder = [2]cfg.Side{cfg.SideLeft, cfg.SideRight}

// UpdateCollisions bounces the ball off at most one paddle per tick, testing
// the left paddle first. The collision space only narrows the candidates;
// the box test on the ball decides.
//
// A hit only counts while the ball travels toward the paddle, and the ball is
// moved out to the paddle face afterwards, so it cannot register twice.
func UpdateCollisions(e *ecs.ECS) {
	w := e.World
	ballEntry, ok := components.Ball.First(w)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	obj := components.Object.Get(ballEntry)

	check := obj.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return
	}

	for _, side := range paddleOrder {
		paddleEntry := candidatePaddle(check, side)
		if paddleEntry == nil {
			continue
		}
		paddle := components.Paddle.Get(paddleEntry)
		if !movingToward(ball, side) {
			continue
		}
		if !ball.CollidesWith(paddle.X, paddle.Y, paddle.Width, paddle.Height) {
			continue
		}

		ball.HandlePaddleCollision(paddle.Y, paddle.Height, paddle.Speed())
		pushOut(ball, paddle)
		syncObject(ballEntry, ball.X, ball.Y)

		if events, ok := GetEvents(w); ok {
			events.Hit = side
		}
		return
	}
}

func candidatePaddle(check *resolv.Collision, side cfg.Side) *donburi.Entry {
	tag := tags.ResolvLeftPaddle
	if side == cfg.SideRight {
		tag = tags.ResolvRightPaddle
	}
	objects := check.ObjectsByTags(tag)
	if len(objects) == 0 {
		return nil
	}
	entry, _ := objects[0].Data.(*donburi.Entry)
	return entry
}

func movingToward(ball *components.BallData, side cfg.Side) bool {
	if side == cfg.SideRight {
		return ball.SpeedX > 0
	}
	return ball.SpeedX < 0
}

func pushOut(ball *components.BallData, paddle *components.PaddleData) {
	if paddle.Side == cfg.SideRight {
		ball.X = paddle.X - ball.Size()
		return
	}
	ball.X = paddle.X + paddle.Width
}
