package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore awards a point when the ball leaves the arena and serves the
// next ball toward the side that conceded.
func UpdateScore(e *ecs.ECS) {
	w := e.World
	ball, ok := GetBall(w)
	if !ok {
		return
	}
	match, ok := GetMatch(w)
	if !ok {
		return
	}

	conceded := ball.IsOutOfBounds()
	if conceded == cfg.SideNone {
		return
	}
	scorer := conceded.Opposite()

	paddle, ok := GetPaddle(w, scorer)
	if !ok {
		return
	}
	paddle.IncrementScore()
	match.Scores[components.ScoreIndex(scorer)] = paddle.Score()
	match.LastConceded = conceded

	ball.Reset(conceded)
	ResetControllers(w)
	syncObjects(w)

	if events, ok := GetEvents(w); ok {
		events.Scorer = scorer
	}
}
