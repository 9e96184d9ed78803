// Package config holds the tunable parameters of the simulation. It must not
// depend on ebiten or any graphics library so the headless runner and the
// tests stay free of a display.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateArena is returned when an arena cannot hold a match.
var ErrDegenerateArena = errors.New("degenerate arena")

// Arena is the fixed play field. Every other formula is expressed relative to
// its size so the simulation is resolution independent.
type Arena struct {
	width    float64
	height   float64
	diagonal float64
}

// NewArena validates the dimensions once; nothing downstream re-checks them.
func NewArena(width, height float64) (Arena, error) {
	if !isUsable(width) || !isUsable(height) {
		return Arena{}, fmt.Errorf("%w: %vx%v", ErrDegenerateArena, width, height)
	}
	return Arena{
		width:    width,
		height:   height,
		diagonal: math.Hypot(width, height),
	}, nil
}

// DefaultArena returns the arena used when a config leaves the size unset.
func DefaultArena() Arena {
	a, _ := NewArena(Defaults.ArenaWidth, Defaults.ArenaHeight)
	return a
}

func isUsable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (a Arena) Width() float64    { return a.width }
func (a Arena) Height() float64   { return a.height }
func (a Arena) Diagonal() float64 { return a.diagonal }

// BackBorder is the horizontal inset between a side wall and its paddle.
func (a Arena) BackBorder() float64 { return a.width / 40 }

// BallRadius is half the side of the ball's bounding box.
func (a Arena) BallRadius() float64 { return math.Min(a.width, a.height) / 50 }

func (a Arena) PaddleHeight() float64 { return a.height / 4 }
func (a Arena) PaddleWidth() float64  { return a.width / 50 }

// PaddleSpeed is the per-tick displacement of a moving paddle.
func (a Arena) PaddleSpeed() float64 { return a.height / 120 }

// BallStartSpeed is the launch speed after a reset.
func (a Arena) BallStartSpeed() float64 { return a.diagonal / Ball.StartSpeedDivisor }

// PaddleX returns the fixed left edge of the paddle guarding side.
func (a Arena) PaddleX(side Side) float64 {
	if side == SideRight {
		return a.width - a.BackBorder() - a.PaddleWidth()
	}
	return a.BackBorder()
}
