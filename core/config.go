package core

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/pong/config"
)

// ErrInvalidConfig wraps every configuration error returned by NewEngine.
var ErrInvalidConfig = errors.New("invalid match config")

// Config describes one match. Player 1 guards the left side, Player 2 the
// right side.
type Config struct {
	Player1Name  string
	Player2Name  string
	Player1IsAI  bool
	Player2IsAI  bool
	AIDifficulty cfg.Difficulty
	TargetScore  int

	// Arena size; zero values select the default arena.
	ArenaWidth  float64
	ArenaHeight float64

	// Seed feeds the match's random source. Equal seeds and equal input
	// replay the same match.
	Seed int64
}

// normalize validates c and returns a copy with the defaults filled in,
// along with the arena it describes.
func (c Config) normalize() (Config, cfg.Arena, error) {
	if c.Player1Name == "" && c.Player2Name == "" {
		return c, cfg.Arena{}, fmt.Errorf("%w: both player names are empty", ErrInvalidConfig)
	}
	if c.TargetScore <= 0 {
		return c, cfg.Arena{}, fmt.Errorf("%w: target score must be positive, got %d", ErrInvalidConfig, c.TargetScore)
	}
	if (c.Player1IsAI || c.Player2IsAI) && !c.AIDifficulty.Valid() {
		return c, cfg.Arena{}, fmt.Errorf("%w: %w: %d", ErrInvalidConfig, cfg.ErrUnknownDifficulty, int(c.AIDifficulty))
	}

	arena := cfg.DefaultArena()
	if c.ArenaWidth != 0 || c.ArenaHeight != 0 {
		var err error
		arena, err = cfg.NewArena(c.ArenaWidth, c.ArenaHeight)
		if err != nil {
			return c, cfg.Arena{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if c.Player1Name == "" {
		c.Player1Name = defaultName(c.Player1IsAI, cfg.Defaults.Player1Name)
	}
	if c.Player2Name == "" {
		c.Player2Name = defaultName(c.Player2IsAI, cfg.Defaults.Player2Name)
	}
	return c, arena, nil
}

func defaultName(isAI bool, fallback string) string {
	if isAI {
		return cfg.Defaults.CPUName
	}
	return fallback
}
