package tags

import "github.com/yohamta/donburi"

var (
	Ball   = donburi.NewTag().SetName("Ball")
	Paddle = donburi.NewTag().SetName("Paddle")
	AI     = donburi.NewTag().SetName("AI")
	Human  = donburi.NewTag().SetName("Human")
)

// Resolv tags for collision checks
const (
	ResolvBall        = "ball"
	ResolvPaddle      = "paddle"
	ResolvLeftPaddle  = "paddle_left"
	ResolvRightPaddle = "paddle_right"
)
