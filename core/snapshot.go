package core

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
)

// Rect is an axis-aligned box in arena coordinates.
type Rect struct {
	X, Y, W, H float64
}

// PaddleView is the renderer's copy of one paddle.
type PaddleView struct {
	Rect
	Name  string
	Score int
	IsAI  bool
}

// Snapshot is a value copy of everything a renderer needs. It shares no
// memory with the engine.
type Snapshot struct {
	State       cfg.MatchState
	ArenaWidth  float64
	ArenaHeight float64
	Ball        Rect
	BallSpeedX  float64
	BallSpeedY  float64
	Left        PaddleView
	Right       PaddleView
	TargetScore int
}

// Snapshot copies the current match state.
func (e *Engine) Snapshot() Snapshot {
	worldMu.RLock()
	defer worldMu.RUnlock()

	match, _ := systems.GetMatch(e.ecs.World)
	s := Snapshot{
		State:       match.State,
		ArenaWidth:  e.arena.Width(),
		ArenaHeight: e.arena.Height(),
		TargetScore: match.TargetScore,
	}

	if ball, ok := systems.GetBall(e.ecs.World); ok {
		s.Ball = Rect{X: ball.X, Y: ball.Y, W: ball.Size(), H: ball.Size()}
		s.BallSpeedX, s.BallSpeedY = ball.SpeedX, ball.SpeedY
	}

	s.Left = e.paddleView(cfg.SideLeft, match)
	s.Right = e.paddleView(cfg.SideRight, match)
	return s
}

func (e *Engine) paddleView(side cfg.Side, match *components.MatchData) PaddleView {
	entry, ok := systems.GetPaddleEntry(e.ecs.World, side)
	if !ok {
		return PaddleView{}
	}
	p := components.Paddle.Get(entry)
	return PaddleView{
		Rect:  Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
		Name:  match.NameOf(side),
		Score: p.Score(),
		IsAI:  entry.HasComponent(components.Controller),
	}
}
