package config

import "image/color"

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// MatchDefaults are used when neither flags nor saved settings provide a value.
type MatchDefaults struct {
	Player1Name string
	Player2Name string
	CPUName     string
	TargetScore int
	Difficulty  Difficulty
	ArenaWidth  float64
	ArenaHeight float64
}

// HostConfig contains the desktop and headless host configuration
type HostConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	TickRate               int // simulation ticks per second
	ScoreFlashSeconds      float32
	MaxHeadlessTicks       int // safety cap for a single headless match

	BackgroundColor color.RGBA
	ForegroundColor color.RGBA
	NetColor        color.RGBA
	FlashColor      color.RGBA
	OverlayColor    color.RGBA
}

// Defaults is the global match defaults configuration
var Defaults MatchDefaults

// Host is the global host configuration
var Host HostConfig

func init() {
	Defaults = MatchDefaults{
		Player1Name: "Player 1",
		Player2Name: "Player 2",
		CPUName:     "CPU",
		TargetScore: 5,
		Difficulty:  DifficultyMedium,
		ArenaWidth:  800,
		ArenaHeight: 400,
	}

	Host = HostConfig{
		Resolutions: []Resolution{
			{Width: 800, Height: 400, Label: "800 x 400"},
			{Width: 1200, Height: 600, Label: "1200 x 600"},
			{Width: 1600, Height: 800, Label: "1600 x 800"},
		},
		DefaultResolutionIndex: 0,
		TickRate:               60,
		ScoreFlashSeconds:      0.6,
		MaxHeadlessTicks:       60 * 60 * 30, // thirty minutes of play at 60 Hz

		BackgroundColor: color.RGBA{R: 10, G: 10, B: 20, A: 255},
		ForegroundColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		NetColor:        color.RGBA{R: 90, G: 90, B: 110, A: 255},
		FlashColor:      color.RGBA{R: 255, G: 255, B: 100, A: 255},
		OverlayColor:    color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}
}
