package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTickLimit is returned by Simulate when the match did not end in time.
var ErrTickLimit = errors.New("tick limit reached")

// Simulate starts the match if it is Ready and ticks it on a synthetic clock
// advancing by step, as fast as possible, until the match ends. It gives up
// after maxTicks ticks or when ctx is done.
func Simulate(ctx context.Context, e *Engine, step time.Duration, maxTicks int) (*MatchResult, error) {
	if step <= 0 {
		return nil, fmt.Errorf("simulate: step must be positive, got %s", step)
	}
	e.Start()

	now := e.lastNow
	for tick := 0; tick < maxTicks; tick++ {
		if tick%1024 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if e.Stopped() {
			return nil, errors.New("simulate: engine stopped")
		}
		now += step
		if res := e.Tick(now); res.Result != nil {
			return res.Result, nil
		}
	}
	return nil, fmt.Errorf("simulate %d ticks: %w", maxTicks, ErrTickLimit)
}
