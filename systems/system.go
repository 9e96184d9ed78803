package systems

import (
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithPlayingCheck wraps a system to skip execution unless the match is
// playing. The state is re-read for every system, so nothing runs after the
// tick that ends the match.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsMatchPlaying(e) {
			return
		}
		system(e)
	}
}

// SetClock records the clock value the next Update runs at.
func SetClock(w donburi.World, now time.Duration) {
	if entry, ok := components.Clock.First(w); ok {
		components.Clock.Get(entry).Now = now
	}
}

// Now returns the clock value of the running tick.
func Now(w donburi.World) time.Duration {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Now
}

// GetMatch returns the singleton match component.
func GetMatch(w donburi.World) (*components.MatchData, bool) {
	entry, ok := components.Match.First(w)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// GetEvents returns the singleton tick event record.
func GetEvents(w donburi.World) (*components.MatchEventsData, bool) {
	entry, ok := components.MatchEvents.First(w)
	if !ok {
		return nil, false
	}
	return components.MatchEvents.Get(entry), true
}

// GetBall returns the match ball.
func GetBall(w donburi.World) (*components.BallData, bool) {
	entry, ok := components.Ball.First(w)
	if !ok {
		return nil, false
	}
	return components.Ball.Get(entry), true
}

// GetPaddleEntry finds the paddle guarding side.
func GetPaddleEntry(w donburi.World, side cfg.Side) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Paddle.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Paddle.Get(e).Side == side {
			found = e
		}
	})
	return found, found != nil
}

// GetPaddle finds the paddle data for side.
func GetPaddle(w donburi.World, side cfg.Side) (*components.PaddleData, bool) {
	e, ok := GetPaddleEntry(w, side)
	if !ok {
		return nil, false
	}
	return components.Paddle.Get(e), true
}

// WarmQueries evaluates every component query the systems use against w.
// donburi caches query matches per world in package-level maps, so the first
// evaluation for a world writes shared state.
func WarmQueries(w donburi.World) {
	for _, q := range []interface {
		First(donburi.World) (*donburi.Entry, bool)
	}{
		components.Ball,
		components.Paddle,
		components.Controller,
		components.Input,
		components.Object,
		components.Space,
		components.Match,
		components.MatchEvents,
		components.Clock,
	} {
		q.First(w)
	}
}
