package components

import (
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and scores.
// This is a singleton component - one per match world.
type MatchData struct {
	State        cfg.MatchState
	Player1Name  string // left paddle
	Player2Name  string // right paddle
	TargetScore  int
	Scores       [2]int   // mirror of the paddle scores, left then right
	LastConceded cfg.Side // SideNone on a fresh match
	Ended        bool     // set once the end of the match has been reported
}

var Match = donburi.NewComponentType[MatchData]()

// ScoreIndex maps a side to its slot in Scores.
func ScoreIndex(side cfg.Side) int {
	if side == cfg.SideRight {
		return 1
	}
	return 0
}

// Leader returns the side that reached the target score, or SideNone.
func (m *MatchData) Leader() cfg.Side {
	switch {
	case m.Scores[0] >= m.TargetScore:
		return cfg.SideLeft
	case m.Scores[1] >= m.TargetScore:
		return cfg.SideRight
	}
	return cfg.SideNone
}

// NameOf returns the display name of the player on side.
func (m *MatchData) NameOf(side cfg.Side) string {
	if side == cfg.SideRight {
		return m.Player2Name
	}
	return m.Player1Name
}

// TickEvents records what happened during the current tick. The engine
// clears it before running the systems and reads it afterwards.
type TickEvents struct {
	Scorer    cfg.Side // side that won a point, SideNone if none
	Hit       cfg.Side // paddle the ball bounced off, SideNone if none
	GameEnded bool
}

// MatchEventsData is the singleton holding TickEvents.
type MatchEventsData struct {
	TickEvents
}

var MatchEvents = donburi.NewComponentType[MatchEventsData]()

// ClockData holds the caller's clock value for the tick being run.
type ClockData struct {
	Now time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
