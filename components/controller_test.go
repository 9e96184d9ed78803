package components

import (
	"math"
	"math/rand"
	"testing"
	"time"

	cfg "github.com/automoto/pong/config"
)

func newTestController(t *testing.T, side cfg.Side, d cfg.Difficulty, seed int64) (*ControllerData, *PaddleData) {
	t.Helper()
	arena := cfg.DefaultArena()
	c, err := NewController(side, d, arena, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	p := NewPaddle(side, arena)
	return &c, &p
}

func TestPredictBallPositionStraightShot(t *testing.T) {
	c, p := newTestController(t, cfg.SideRight, cfg.DifficultyEasy, 1)
	ball := &BallData{X: 700, Y: 200, SpeedX: 3, SpeedY: 0}

	if got := c.PredictBallPosition(ball, p); got != 200 {
		t.Fatalf("PredictBallPosition = %v, want 200", got)
	}
}

func TestPredictBallPositionNotApproaching(t *testing.T) {
	tests := []struct {
		name   string
		side   cfg.Side
		speedX float64
	}{
		{"right side, ball moving left", cfg.SideRight, -3},
		{"left side, ball moving right", cfg.SideLeft, 3},
		{"no horizontal speed", cfg.SideRight, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, p := newTestController(t, tt.side, cfg.DifficultyMedium, 1)
			ball := &BallData{X: 400, Y: 123, SpeedX: tt.speedX, SpeedY: 5}
			if got := c.PredictBallPosition(ball, p); got != 123 {
				t.Fatalf("PredictBallPosition = %v, want 123", got)
			}
		})
	}
}

func TestPredictBallPositionFoldsWallBounces(t *testing.T) {
	c, p := newTestController(t, cfg.SideRight, cfg.DifficultyHard, 1)
	// 166 ticks to the paddle: 200 + 664 = 864, one bounce off each wall.
	ball := &BallData{X: p.X - 664, Y: 200, SpeedX: 4, SpeedY: 4}

	if got := c.PredictBallPosition(ball, p); math.Abs(got-64) > 1e-9 {
		t.Fatalf("PredictBallPosition = %v, want 64", got)
	}

	ball.SpeedY = -4 // 200 - 664 = -464, folds to 336
	if got := c.PredictBallPosition(ball, p); math.Abs(got-336) > 1e-9 {
		t.Fatalf("PredictBallPosition = %v, want 336", got)
	}
}

func TestPredictBallPositionNonFinite(t *testing.T) {
	c, p := newTestController(t, cfg.SideRight, cfg.DifficultyHard, 1)
	ball := &BallData{X: 100, Y: 77, SpeedX: 1e-300, SpeedY: 1e300}
	if got := c.PredictBallPosition(ball, p); got != 77 {
		t.Fatalf("PredictBallPosition = %v, want fallback 77", got)
	}
}

func TestControllerMovesTowardBall(t *testing.T) {
	c, p := newTestController(t, cfg.SideRight, cfg.DifficultyHard, 1)
	ball := &BallData{X: 400, Y: 20, SpeedX: 0, SpeedY: 0}
	now := 2 * time.Second

	c.Update(ball, p, now)

	if !p.Intent.Up || p.Intent.Down {
		t.Fatalf("intent = %+v, want up", p.Intent)
	}
	if c.LastMoveTime() != now {
		t.Fatalf("last move time = %v, want %v", c.LastMoveTime(), now)
	}
	half := p.Height / 2
	if c.TargetY() < half || c.TargetY() > cfg.DefaultArena().Height()-half {
		t.Fatalf("target %v outside the reachable band", c.TargetY())
	}

	ball.Y = 380
	c.Update(ball, p, now+100*time.Millisecond)
	if !p.Intent.Up {
		t.Fatal("controller changed its mind before the reaction delay elapsed")
	}

	c.Update(ball, p, now+c.Tuning().ReactionDelay)
	if !p.Intent.Down {
		t.Fatalf("intent = %+v, want down after the reaction delay", p.Intent)
	}
}

func TestControllerHoldsInsideTolerance(t *testing.T) {
	// EASY aim error never exceeds its tolerance, so a ball level with the
	// paddle centre always lands inside the dead zone.
	c, p := newTestController(t, cfg.SideLeft, cfg.DifficultyEasy, 3)
	p.Intent = MovementIntent{Down: true}
	ball := &BallData{X: 400, Y: p.CenterY(), SpeedX: 5}

	c.Update(ball, p, 5*time.Second)

	if p.Intent != (MovementIntent{}) {
		t.Fatalf("intent = %+v, want none", p.Intent)
	}
	if c.LastMoveTime() != 0 {
		t.Fatalf("last move time stamped without moving: %v", c.LastMoveTime())
	}
}

func TestControllerReset(t *testing.T) {
	c, p := newTestController(t, cfg.SideRight, cfg.DifficultyHard, 1)
	c.Update(&BallData{X: 400, Y: 10}, p, time.Second)

	c.Reset(p)

	if c.TargetY() != 0 || c.LastMoveTime() != 0 || p.Intent != (MovementIntent{}) {
		t.Fatalf("Reset left target %v, last move %v, intent %+v", c.TargetY(), c.LastMoveTime(), p.Intent)
	}
}

func TestSetDifficulty(t *testing.T) {
	c, _ := newTestController(t, cfg.SideRight, cfg.DifficultyEasy, 1)
	if err := c.SetDifficulty(cfg.DifficultyHard); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	if c.Difficulty() != cfg.DifficultyHard || c.Tuning().ReactionDelay != 250*time.Millisecond {
		t.Fatalf("difficulty = %v tuning = %+v", c.Difficulty(), c.Tuning())
	}
	if err := c.SetDifficulty(cfg.Difficulty(9)); err == nil {
		t.Fatal("SetDifficulty accepted an unknown difficulty")
	}
	if c.Difficulty() != cfg.DifficultyHard {
		t.Fatal("failed SetDifficulty changed the difficulty")
	}
}

func TestAimErrorShrinksWithDifficulty(t *testing.T) {
	meanError := func(d cfg.Difficulty) float64 {
		c, p := newTestController(t, cfg.SideRight, d, 42)
		ball := &BallData{X: 700, Y: 200, SpeedX: 3}
		predicted := c.PredictBallPosition(ball, p)

		var sum float64
		const n = 2000
		for i := 1; i <= n; i++ {
			c.Update(ball, p, time.Duration(i)*time.Minute)
			sum += math.Abs(c.TargetY() - predicted)
		}
		return sum / n
	}

	easy := meanError(cfg.DifficultyEasy)
	medium := meanError(cfg.DifficultyMedium)
	hard := meanError(cfg.DifficultyHard)

	if !(hard <= medium && medium <= easy) {
		t.Fatalf("mean aim error not ordered: hard %v, medium %v, easy %v", hard, medium, easy)
	}
	if hard == 0 {
		t.Fatal("hard difficulty should still miss a little")
	}
}
