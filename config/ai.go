package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned for a difficulty tag outside the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty affects reaction time and aim quality of the opponent controller
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "EASY",
	DifficultyMedium: "MEDIUM",
	DifficultyHard:   "HARD",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether d has a tuning entry.
func (d Difficulty) Valid() bool {
	_, ok := AI.Difficulties[d]
	return ok
}

// ParseDifficulty accepts the tags EASY, MEDIUM and HARD in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	tag := strings.ToUpper(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == tag {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// DifficultyConfig holds tuning values for the controller at a specific difficulty
type DifficultyConfig struct {
	ToleranceDivisor   float64       // dead zone = arena height / divisor
	PredictionAccuracy float64       // 1 means no aim error
	ReactionDelay      time.Duration // minimum time between two aim decisions
}

// AIConfigData holds all controller-related configuration
type AIConfigData struct {
	Difficulties map[Difficulty]DifficultyConfig
	AimErrorSpan float64 // aim error band as a fraction of arena height at zero accuracy
}

// AI holds opponent controller configuration
var AI AIConfigData

func init() {
	AI = AIConfigData{
		AimErrorSpan: 0.25,
		Difficulties: map[Difficulty]DifficultyConfig{
			DifficultyEasy: {
				ToleranceDivisor:   10,
				PredictionAccuracy: 0.2,
				ReactionDelay:      800 * time.Millisecond,
			},
			DifficultyMedium: {
				ToleranceDivisor:   25,
				PredictionAccuracy: 0.5,
				ReactionDelay:      500 * time.Millisecond,
			},
			DifficultyHard: {
				ToleranceDivisor:   30,
				PredictionAccuracy: 0.7,
				ReactionDelay:      250 * time.Millisecond,
			},
		},
	}
}

// Tuning is the derived triple for one difficulty on one arena.
type Tuning struct {
	Tolerance          float64
	PredictionAccuracy float64
	ReactionDelay      time.Duration
}

// TuningFor looks d up in the table. It is the only place the table is read.
func TuningFor(d Difficulty, arena Arena) (Tuning, error) {
	dc, ok := AI.Difficulties[d]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return Tuning{
		Tolerance:          arena.Height() / dc.ToleranceDivisor,
		PredictionAccuracy: dc.PredictionAccuracy,
		ReactionDelay:      dc.ReactionDelay,
	}, nil
}
