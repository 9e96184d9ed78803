package config

// MatchState is the phase of a match.
type MatchState int

const (
	MatchStateLoading MatchState = iota
	MatchStateReady
	MatchStatePlaying
	MatchStatePaused
	MatchStateGameOver
)

var matchStateNames = map[MatchState]string{
	MatchStateLoading:  "Loading",
	MatchStateReady:    "Ready",
	MatchStatePlaying:  "Playing",
	MatchStatePaused:   "Paused",
	MatchStateGameOver: "GameOver",
}

func (s MatchState) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Side identifies one half of the arena.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Opposite returns the other side; SideNone maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// Direction is the sign of horizontal travel toward s.
func (s Side) Direction() float64 {
	if s == SideRight {
		return 1
	}
	return -1
}
