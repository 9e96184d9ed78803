package components

import (
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/pong/config"
)

const eps = 1e-9

func newTestBall(t *testing.T) *BallData {
	t.Helper()
	b := NewBall(cfg.DefaultArena(), rand.New(rand.NewSource(1)))
	return &b
}

func TestBallResetLaunchesTowardSide(t *testing.T) {
	b := newTestBall(t)
	arena := cfg.DefaultArena()
	start := arena.BallStartSpeed()

	for _, side := range []cfg.Side{cfg.SideLeft, cfg.SideRight} {
		for i := 0; i < 200; i++ {
			b.BounceCount = 7
			b.Reset(side)

			if b.X != arena.Width()/2-b.Radius || b.Y != arena.Height()/2-b.Radius {
				t.Fatalf("Reset(%v) left ball at (%v, %v), want centre", side, b.X, b.Y)
			}
			if math.Signbit(b.SpeedX) != (side == cfg.SideLeft) {
				t.Fatalf("Reset(%v) speedX = %v points the wrong way", side, b.SpeedX)
			}
			ratio := math.Abs(b.SpeedX) / start
			if ratio < cfg.Ball.MinLaunchRatio-eps || ratio > cfg.Ball.MaxLaunchRatio+eps {
				t.Fatalf("Reset(%v) launch ratio = %v, want within [%v, %v]", side, ratio, cfg.Ball.MinLaunchRatio, cfg.Ball.MaxLaunchRatio)
			}
			if math.Abs(b.Speed()-start) > eps {
				t.Fatalf("Reset(%v) speed = %v, want %v", side, b.Speed(), start)
			}
			if b.BounceCount != 0 {
				t.Fatalf("Reset(%v) kept bounce count %d", side, b.BounceCount)
			}
		}
	}
}

func TestBallUpdateSelfResetsWhenStationary(t *testing.T) {
	b := newTestBall(t)
	b.Update()
	if b.SpeedX >= 0 {
		t.Fatalf("stationary ball should launch left, speedX = %v", b.SpeedX)
	}
}

func TestBallUpdateClampsAtTopWall(t *testing.T) {
	b := newTestBall(t)
	b.X, b.Y = 400, 1
	b.SpeedX, b.SpeedY = 1, -6 // integrates to y = -5

	b.Update()

	if b.Y != 0 {
		t.Errorf("y = %v, want 0", b.Y)
	}
	if b.SpeedY != 6 {
		t.Errorf("speedY = %v, want 6", b.SpeedY)
	}
}

func TestBallUpdateClampsAtBottomWall(t *testing.T) {
	b := newTestBall(t)
	floor := cfg.DefaultArena().Height() - b.Size()
	b.X, b.Y = 400, floor-1
	b.SpeedX, b.SpeedY = 1, 4

	b.Update()

	if b.Y != floor {
		t.Errorf("y = %v, want %v", b.Y, floor)
	}
	if b.SpeedY != -4 {
		t.Errorf("speedY = %v, want -4", b.SpeedY)
	}
}

func TestBallStaysBetweenWalls(t *testing.T) {
	b := newTestBall(t)
	floor := cfg.DefaultArena().Height() - b.Size()
	b.Reset(cfg.SideRight)
	b.SpeedX = 0.01 // keep it inside the arena horizontally for the whole run

	for i := 0; i < 5000; i++ {
		b.Update()
		if b.Y < 0 || b.Y > floor {
			t.Fatalf("tick %d: y = %v outside [0, %v]", i, b.Y, floor)
		}
	}
}

func TestHandlePaddleCollisionKeepsSpeed(t *testing.T) {
	b := newTestBall(t)
	b.Reset(cfg.SideRight)
	before := b.Speed()

	// paddle whose top is 30 above the ball centre
	b.HandlePaddleCollision(b.CenterY()-30, 100, 0)

	if math.Abs(b.Speed()-before) > eps {
		t.Errorf("speed = %v, want %v", b.Speed(), before)
	}
	if b.SpeedX >= 0 {
		t.Errorf("speedX = %v, want it reversed", b.SpeedX)
	}
	if b.BounceCount != 1 {
		t.Errorf("bounce count = %d, want 1", b.BounceCount)
	}
}

func TestHandlePaddleCollisionAngle(t *testing.T) {
	tests := []struct {
		name        string
		offset      float64 // ball centre minus paddle top
		paddleSpeed float64
		wantAngle   float64
	}{
		{"centre", 50, 0, 0},
		{"top edge", 0, 0, -math.Pi / 8},
		{"bottom edge", 100, 0, math.Pi / 8},
		{"above paddle", -40, 0, -math.Pi / 8},
		{"spin clamped", 100, 100, math.Pi / 4},
		{"spin against hit", 0, -100, -math.Pi / 4},
		{"spin", 50, 10, 0.1 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(t)
			b.SpeedX, b.SpeedY = -5, 0

			b.HandlePaddleCollision(b.CenterY()-tt.offset, 100, tt.paddleSpeed)

			got := math.Atan2(b.SpeedY, b.SpeedX)
			if math.Abs(got-tt.wantAngle) > 1e-9 {
				t.Errorf("angle = %v, want %v", got, tt.wantAngle)
			}
		})
	}
}

func TestAccelerationRatchet(t *testing.T) {
	b := newTestBall(t)
	b.Reset(cfg.SideRight)
	start := b.Speed()
	amort := cfg.Ball.AccelerationAmort

	for i := 1; i < amort; i++ {
		b.HandlePaddleCollision(b.CenterY()-50, 100, 0)
		if math.Abs(b.Speed()-start) > 1e-6 {
			t.Fatalf("bounce %d: speed = %v, want %v", i, b.Speed(), start)
		}
	}

	b.HandlePaddleCollision(b.CenterY()-50, 100, 0)
	want := start * cfg.Ball.Acceleration
	if math.Abs(b.Speed()-want) > 1e-6 {
		t.Fatalf("bounce %d: speed = %v, want %v", amort, b.Speed(), want)
	}
}

func TestCollidesWith(t *testing.T) {
	b := newTestBall(t)
	b.X, b.Y = 100, 100 // box 100..116

	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"overlap", 110, 90, 16, 100, true},
		{"touching edge", 116, 90, 16, 100, false},
		{"above", 100, 0, 16, 100, false},
		{"inside", 104, 104, 4, 4, true},
	}
	for _, tt := range tests {
		if got := b.CollidesWith(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("%s: CollidesWith = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsOutOfBounds(t *testing.T) {
	b := newTestBall(t)
	width := cfg.DefaultArena().Width()

	tests := []struct {
		x    float64
		want cfg.Side
	}{
		{-0.5, cfg.SideLeft},
		{0, cfg.SideNone},
		{400, cfg.SideNone},
		{width - b.Size(), cfg.SideNone},
		{width - b.Size() + 0.5, cfg.SideRight},
	}
	for _, tt := range tests {
		b.X = tt.x
		if got := b.IsOutOfBounds(); got != tt.want {
			t.Errorf("x = %v: IsOutOfBounds = %v, want %v", tt.x, got, tt.want)
		}
	}
}
