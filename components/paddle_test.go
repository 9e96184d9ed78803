package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
)

func TestNewPaddlePlacement(t *testing.T) {
	arena := cfg.DefaultArena()
	left := NewPaddle(cfg.SideLeft, arena)
	right := NewPaddle(cfg.SideRight, arena)

	if left.X != arena.BackBorder() {
		t.Errorf("left x = %v, want %v", left.X, arena.BackBorder())
	}
	if right.X != arena.Width()-arena.BackBorder()-arena.PaddleWidth() {
		t.Errorf("right x = %v", right.X)
	}
	if left.CenterY() != arena.Height()/2 {
		t.Errorf("left paddle not centred: centre y = %v", left.CenterY())
	}
}

func TestPaddleUpdate(t *testing.T) {
	arena := cfg.DefaultArena()

	tests := []struct {
		name      string
		intent    MovementIntent
		wantSpeed float64
	}{
		{"idle", MovementIntent{}, 0},
		{"up", MovementIntent{Up: true}, -arena.PaddleSpeed()},
		{"down", MovementIntent{Down: true}, arena.PaddleSpeed()},
		{"up wins", MovementIntent{Up: true, Down: true}, -arena.PaddleSpeed()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(cfg.SideLeft, arena)
			y := p.Y
			p.Intent = tt.intent
			p.Update()

			if p.Speed() != tt.wantSpeed {
				t.Errorf("speed = %v, want %v", p.Speed(), tt.wantSpeed)
			}
			if p.Y != y+tt.wantSpeed {
				t.Errorf("y = %v, want %v", p.Y, y+tt.wantSpeed)
			}
		})
	}
}

func TestPaddleClampsAtWalls(t *testing.T) {
	arena := cfg.DefaultArena()
	p := NewPaddle(cfg.SideRight, arena)

	p.Intent = MovementIntent{Up: true}
	for i := 0; i < 1000; i++ {
		p.Update()
		if p.Y < 0 || p.Y > p.MaxY() {
			t.Fatalf("tick %d: y = %v outside [0, %v]", i, p.Y, p.MaxY())
		}
	}
	if p.Y != 0 || p.Speed() != 0 {
		t.Fatalf("pressed against top: y = %v speed = %v, want 0 and 0", p.Y, p.Speed())
	}

	p.Intent = MovementIntent{Down: true}
	for i := 0; i < 1000; i++ {
		p.Update()
	}
	if p.Y != p.MaxY() || p.Speed() != 0 {
		t.Fatalf("pressed against bottom: y = %v speed = %v, want %v and 0", p.Y, p.Speed(), p.MaxY())
	}
}

func TestPaddleScoreAndRecenter(t *testing.T) {
	p := NewPaddle(cfg.SideLeft, cfg.DefaultArena())
	centre := p.Y

	p.IncrementScore()
	p.IncrementScore()
	if p.Score() != 2 {
		t.Fatalf("score = %d, want 2", p.Score())
	}
	p.ResetScore()
	if p.Score() != 0 {
		t.Fatalf("score after reset = %d", p.Score())
	}

	p.Intent = MovementIntent{Down: true}
	p.Update()
	p.Recenter()
	if p.Y != centre || p.Speed() != 0 || p.Intent != (MovementIntent{}) {
		t.Fatalf("Recenter left y = %v speed = %v intent = %+v", p.Y, p.Speed(), p.Intent)
	}
}
