package systems

import (
	cfg "github.com/automoto/pong/config"
)

// Bounds for the target score offered by the setup screen.
const (
	MinTargetScore = 1
	MaxTargetScore = 21
)

// ToggleAI switches the player on side between human and computer control.
// The name follows the switch when it still holds the default for the old
// controller.
func ToggleAI(s *SavedSettings, side cfg.Side) {
	isAI, name, human := &s.Player1IsAI, &s.Player1Name, cfg.Defaults.Player1Name
	if side == cfg.SideRight {
		isAI, name, human = &s.Player2IsAI, &s.Player2Name, cfg.Defaults.Player2Name
	}

	*isAI = !*isAI
	switch {
	case *isAI && *name == human:
		*name = cfg.Defaults.CPUName
	case !*isAI && *name == cfg.Defaults.CPUName:
		*name = human
	}
}

// CycleDifficulty moves to the next difficulty, wrapping after HARD.
func CycleDifficulty(s *SavedSettings) {
	d, err := cfg.ParseDifficulty(s.Difficulty)
	if err != nil {
		s.Difficulty = cfg.Defaults.Difficulty.String()
		return
	}
	next := cfg.Difficulty((int(d) + 1) % len(cfg.AI.Difficulties))
	s.Difficulty = next.String()
}

// ChangeTargetScore adds delta to the target score within the offered bounds.
func ChangeTargetScore(s *SavedSettings, delta int) {
	s.TargetScore = max(MinTargetScore, min(MaxTargetScore, s.TargetScore+delta))
}

// CycleResolution moves to the next window size and returns it.
func CycleResolution(s *SavedSettings) cfg.Resolution {
	s.ResolutionIndex = (s.ResolutionIndex + 1) % len(cfg.Host.Resolutions)
	return cfg.Host.Resolutions[s.ResolutionIndex]
}

// ControllerName describes who plays side.
func ControllerName(s SavedSettings, side cfg.Side) string {
	isAI := s.Player1IsAI
	if side == cfg.SideRight {
		isAI = s.Player2IsAI
	}
	if isAI {
		return "CPU"
	}
	return "Human"
}
