package config

import "math"

// BallConfig contains ball physics tuning.
type BallConfig struct {
	StartSpeedDivisor float64 // start speed = arena diagonal / divisor
	MinLaunchRatio    float64 // share of start speed given to speedX on reset
	MaxLaunchRatio    float64
	MaxBounceAngle    float64 // radians, reached at the paddle's ends
	Acceleration      float64 // speed multiplier applied by the ratchet
	AccelerationAmort int     // paddle bounces between two accelerations
	BroadPhaseMargin  float64 // padding of the ball's collision object
}

// Ball holds ball physics configuration
var Ball BallConfig

func init() {
	Ball = BallConfig{
		StartSpeedDivisor: 142,
		MinLaunchRatio:    0.5,
		MaxLaunchRatio:    0.8,
		MaxBounceAngle:    math.Pi / 4, // 45 degrees
		Acceleration:      1.2,
		AccelerationAmort: 100,
		BroadPhaseMargin:  1,
	}
}
