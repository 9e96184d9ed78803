package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch ends the match once a side reaches the target score.
func UpdateMatch(e *ecs.ECS) {
	match, ok := GetMatch(e.World)
	if !ok || match.State != cfg.MatchStatePlaying {
		return
	}
	if match.Leader() == cfg.SideNone {
		return
	}

	match.State = cfg.MatchStateGameOver
	if !match.Ended {
		match.Ended = true
		if events, ok := GetEvents(e.World); ok {
			events.GameEnded = true
		}
	}
}

// MarkReady finishes loading. Loading -> Ready.
func MarkReady(e *ecs.ECS) bool {
	return transition(e.World, cfg.MatchStateLoading, cfg.MatchStateReady, nil)
}

// StartMatch serves toward the side that conceded last, or left on a fresh
// match. Ready -> Playing.
func StartMatch(e *ecs.ECS) bool {
	w := e.World
	return transition(w, cfg.MatchStateReady, cfg.MatchStatePlaying, func(match *components.MatchData) {
		side := match.LastConceded
		if side == cfg.SideNone {
			side = cfg.SideLeft
		}
		if ball, ok := GetBall(w); ok {
			ball.Reset(side)
		}
		ResetControllers(w)
		syncObjects(w)
	})
}

// PauseMatch freezes the simulation. Playing -> Paused.
func PauseMatch(e *ecs.ECS) bool {
	return transition(e.World, cfg.MatchStatePlaying, cfg.MatchStatePaused, nil)
}

// ResumeMatch continues where the pause left off. Paused -> Playing.
func ResumeMatch(e *ecs.ECS) bool {
	return transition(e.World, cfg.MatchStatePaused, cfg.MatchStatePlaying, nil)
}

// RestartMatch zeroes the scores and puts the pieces back. GameOver -> Ready.
func RestartMatch(e *ecs.ECS) bool {
	w := e.World
	return transition(w, cfg.MatchStateGameOver, cfg.MatchStateReady, func(match *components.MatchData) {
		match.Scores = [2]int{}
		match.LastConceded = cfg.SideNone
		match.Ended = false

		components.Paddle.Each(w, func(entry *donburi.Entry) {
			paddle := components.Paddle.Get(entry)
			paddle.ResetScore()
			paddle.Recenter()
			if entry.HasComponent(components.Input) {
				components.Input.Get(entry).Intent = components.MovementIntent{}
			}
		})
		if ball, ok := GetBall(w); ok {
			ball.Reset(cfg.SideLeft)
		}
		ResetControllers(w)
		syncObjects(w)
	})
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(e *ecs.ECS) bool {
	match, ok := GetMatch(e.World)
	return ok && match.State == cfg.MatchStatePlaying
}

// transition moves from one state to another and runs onEnter in between.
// A request that does not match the current state is a no-op.
func transition(w donburi.World, from, to cfg.MatchState, onEnter func(*components.MatchData)) bool {
	match, ok := GetMatch(w)
	if !ok || match.State != from {
		return false
	}
	if onEnter != nil {
		onEnter(match)
	}
	match.State = to
	return true
}
