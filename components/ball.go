package components

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// BallData is the moving entity. X and Y locate the top-left corner of its
// bounding box, whose side is twice the radius.
type BallData struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	BounceCount    int

	arena cfg.Arena
	rng   *rand.Rand
}

var Ball = donburi.NewComponentType[BallData]()

// NewBall returns a stationary ball; its first Update launches it to the left.
func NewBall(arena cfg.Arena, rng *rand.Rand) BallData {
	r := arena.BallRadius()
	return BallData{
		X:      arena.Width()/2 - r,
		Y:      arena.Height()/2 - r,
		Radius: r,
		arena:  arena,
		rng:    rng,
	}
}

// Size is the side of the bounding box.
func (b *BallData) Size() float64 { return 2 * b.Radius }

// CenterY is the vertical centre of the ball.
func (b *BallData) CenterY() float64 { return b.Y + b.Radius }

// Speed is the magnitude of the velocity.
func (b *BallData) Speed() float64 { return math.Hypot(b.SpeedX, b.SpeedY) }

// Reset centres the ball and launches it toward side at the start speed with
// a random angle.
func (b *BallData) Reset(side cfg.Side) {
	b.X = b.arena.Width()/2 - b.Radius
	b.Y = b.arena.Height()/2 - b.Radius

	start := b.arena.BallStartSpeed()
	ratio := cfg.Ball.MinLaunchRatio + b.rng.Float64()*(cfg.Ball.MaxLaunchRatio-cfg.Ball.MinLaunchRatio)
	b.SpeedX = side.Direction() * ratio * start
	b.SpeedY = math.Sqrt(start*start - b.SpeedX*b.SpeedX)
	if b.rng.Intn(2) == 0 {
		b.SpeedY = -b.SpeedY
	}
	b.BounceCount = 0
}

// Update integrates the position and resolves wall bounces.
func (b *BallData) Update() {
	if b.SpeedX == 0 && b.SpeedY == 0 {
		b.Reset(cfg.SideLeft)
	}

	b.X += b.SpeedX
	b.Y += b.SpeedY

	floor := b.arena.Height() - b.Size()
	if b.Y < 0 {
		b.Y = 0
		b.SpeedY = math.Abs(b.SpeedY)
	} else if b.Y > floor {
		b.Y = floor
		b.SpeedY = -math.Abs(b.SpeedY)
	}
}

// CollidesWith tests the ball's box against a paddle box.
func (b *BallData) CollidesWith(paddleX, paddleY, paddleWidth, paddleHeight float64) bool {
	return b.X < paddleX+paddleWidth &&
		b.X+b.Size() > paddleX &&
		b.Y < paddleY+paddleHeight &&
		b.Y+b.Size() > paddleY
}

// HandlePaddleCollision sends the ball back with an angle that depends on
// where it struck the paddle. The speed magnitude is kept, except on every
// AccelerationAmort-th bounce where it is multiplied by Acceleration.
// paddleSpeed is the paddle's last displacement and adds spin.
func (b *BallData) HandlePaddleCollision(paddleY, paddleHeight, paddleSpeed float64) {
	speed := b.Speed()
	direction := 1.0
	if b.SpeedX > 0 {
		direction = -1
	}

	relativeIntersectY := (b.CenterY() - paddleY) / paddleHeight
	relativeIntersectY = math.Max(0, math.Min(1, relativeIntersectY))
	normalized := relativeIntersectY - 0.5

	maxAngle := cfg.Ball.MaxBounceAngle
	bounceAngle := normalized*maxAngle + paddleSpeed/paddleHeight*maxAngle
	bounceAngle = math.Max(-maxAngle, math.Min(maxAngle, bounceAngle))

	b.SpeedX = direction * speed * math.Cos(bounceAngle)
	b.SpeedY = speed * math.Sin(bounceAngle)

	b.BounceCount++
	if b.BounceCount%cfg.Ball.AccelerationAmort == 0 {
		b.SpeedX *= cfg.Ball.Acceleration
		b.SpeedY *= cfg.Ball.Acceleration
	}
}

// IsOutOfBounds reports the side the ball left the arena through, if any.
func (b *BallData) IsOutOfBounds() cfg.Side {
	if b.X < 0 {
		return cfg.SideLeft
	}
	if b.X+b.Size() > b.arena.Width() {
		return cfg.SideRight
	}
	return cfg.SideNone
}
