package components

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// ControllerData is the opponent AI. It lives on the paddle entity it drives
// and writes that paddle's intent; the ball is only read.
type ControllerData struct {
	Side cfg.Side

	difficulty   cfg.Difficulty
	tuning       cfg.Tuning
	arena        cfg.Arena
	rng          *rand.Rand
	targetY      float64
	lastMoveTime time.Duration
}

var Controller = donburi.NewComponentType[ControllerData]()

// NewController builds a controller for side. It fails only for a difficulty
// missing from the tuning table.
func NewController(side cfg.Side, d cfg.Difficulty, arena cfg.Arena, rng *rand.Rand) (ControllerData, error) {
	c := ControllerData{Side: side, arena: arena, rng: rng}
	if err := c.SetDifficulty(d); err != nil {
		return ControllerData{}, err
	}
	return c, nil
}

// SetDifficulty re-derives the tuning triple.
func (c *ControllerData) SetDifficulty(d cfg.Difficulty) error {
	t, err := cfg.TuningFor(d, c.arena)
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}
	c.difficulty = d
	c.tuning = t
	return nil
}

func (c *ControllerData) Difficulty() cfg.Difficulty { return c.difficulty }
func (c *ControllerData) Tuning() cfg.Tuning         { return c.tuning }

// TargetY is the last aim point, error included.
func (c *ControllerData) TargetY() float64 { return c.targetY }

// LastMoveTime is the clock value of the last decision that moved the paddle.
func (c *ControllerData) LastMoveTime() time.Duration { return c.lastMoveTime }

// Reset forgets the aim state so nothing leaks from one point to the next.
func (c *ControllerData) Reset(paddle *PaddleData) {
	c.targetY = 0
	c.lastMoveTime = 0
	if paddle != nil {
		paddle.Intent = MovementIntent{}
	}
}

// Update decides the paddle intent for this tick. Between two decisions that
// moved the paddle at least ReactionDelay must elapse; until then the previous
// intent is kept.
func (c *ControllerData) Update(ball *BallData, paddle *PaddleData, now time.Duration) {
	if now-c.lastMoveTime < c.tuning.ReactionDelay {
		return
	}

	predictedY := c.PredictBallPosition(ball, paddle)

	h := c.arena.Height()
	errorBand := (1 - c.tuning.PredictionAccuracy) * h * cfg.AI.AimErrorSpan
	target := predictedY + (c.rng.Float64()-0.5)*errorBand

	half := paddle.Height / 2
	target = math.Max(half, math.Min(h-half, target))
	c.targetY = target

	diff := target - paddle.CenterY()
	if math.Abs(diff) <= c.tuning.Tolerance {
		paddle.Intent = MovementIntent{}
		return
	}
	paddle.Intent = MovementIntent{Up: diff < 0, Down: diff > 0}
	c.lastMoveTime = now
}

// PredictBallPosition returns where the ball will be when it reaches the
// paddle's x. A ball moving away, or not moving horizontally, yields its
// current y. Wall bounces are folded back into [0, height].
func (c *ControllerData) PredictBallPosition(ball *BallData, paddle *PaddleData) float64 {
	if !c.approaching(ball) {
		return ball.Y
	}

	timeToReach := math.Abs(ball.X-paddle.X) / math.Abs(ball.SpeedX)
	predicted := ball.Y + ball.SpeedY*timeToReach
	if math.IsNaN(predicted) || math.IsInf(predicted, 0) {
		return ball.Y
	}
	return foldIntoRange(predicted, c.arena.Height())
}

func (c *ControllerData) approaching(ball *BallData) bool {
	switch {
	case ball.SpeedX == 0:
		return false
	case c.Side == cfg.SideRight:
		return ball.SpeedX > 0
	default:
		return ball.SpeedX < 0
	}
}

// foldIntoRange mirrors y off 0 and h until it lies inside [0, h]. The
// reflections are periodic with period 2h, so it is computed in closed form.
func foldIntoRange(y, h float64) float64 {
	if y >= 0 && y <= h {
		return y
	}
	period := 2 * h
	y = math.Mod(y, period)
	if y < 0 {
		y += period
	}
	if y > h {
		y = period - y
	}
	return y
}
