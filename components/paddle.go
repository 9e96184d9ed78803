package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// PaddleData is a controlled entity. X is fixed per side; Y is the top edge.
//
// Speed is a side channel: it holds the displacement applied by the last
// Update and is read by the ball on impact to add spin. It is zero when the
// paddle rests or is pressed against a wall.
type PaddleData struct {
	Side      cfg.Side
	X, Y      float64
	Width     float64
	Height    float64
	BaseSpeed float64
	Intent    MovementIntent

	maxY  float64
	speed float64
	score int
}

var Paddle = donburi.NewComponentType[PaddleData]()

// NewPaddle places a paddle for side, vertically centred.
func NewPaddle(side cfg.Side, arena cfg.Arena) PaddleData {
	h := arena.PaddleHeight()
	return PaddleData{
		Side:      side,
		X:         arena.PaddleX(side),
		Y:         (arena.Height() - h) / 2,
		Width:     arena.PaddleWidth(),
		Height:    h,
		BaseSpeed: arena.PaddleSpeed(),
		maxY:      arena.Height() - h,
	}
}

// Up moves the paddle toward the top wall.
func (p *PaddleData) Up() {
	next := p.Y - p.BaseSpeed
	if next < 0 {
		p.Y = 0
		p.speed = 0
		return
	}
	p.Y = next
	p.speed = -p.BaseSpeed
}

// Down moves the paddle toward the bottom wall.
func (p *PaddleData) Down() {
	next := p.Y + p.BaseSpeed
	if next > p.maxY {
		p.Y = p.maxY
		p.speed = 0
		return
	}
	p.Y = next
	p.speed = p.BaseSpeed
}

// Update applies the current intent. Up wins when both flags are set.
func (p *PaddleData) Update() {
	switch {
	case p.Intent.Up:
		p.Up()
	case p.Intent.Down:
		p.Down()
	default:
		p.speed = 0
	}
	p.clamp()
}

func (p *PaddleData) clamp() {
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > p.maxY {
		p.Y = p.maxY
	}
}

// Speed returns the last applied displacement.
func (p *PaddleData) Speed() float64 { return p.speed }

// CenterY is the vertical centre of the paddle.
func (p *PaddleData) CenterY() float64 { return p.Y + p.Height/2 }

// MaxY is the lowest legal value of Y.
func (p *PaddleData) MaxY() float64 { return p.maxY }

func (p *PaddleData) IncrementScore() { p.score++ }
func (p *PaddleData) Score() int      { return p.score }
func (p *PaddleData) ResetScore()     { p.score = 0 }

// Recenter puts the paddle back in the middle and stops it.
func (p *PaddleData) Recenter() {
	p.Y = p.maxY / 2
	p.speed = 0
	p.Intent = MovementIntent{}
}
