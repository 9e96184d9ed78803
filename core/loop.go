package core

import (
	"context"
	"io"
	"sync"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/charmbracelet/log"
)

// GameLoop drives one engine from a wall-clock ticker. It is the real-time
// tick source for hosts that have no frame loop of their own.
type GameLoop struct {
	engine   *Engine
	tickRate int
	logger   *log.Logger
	onTick   func(TickResult)

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewGameLoop creates a loop ticking engine tickRate times per second.
// onTick, if not nil, receives every tick result.
func NewGameLoop(engine *Engine, tickRate int, logger *log.Logger, onTick func(TickResult)) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Host.TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameLoop{
		engine:   engine,
		tickRate: tickRate,
		logger:   logger,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run ticks the engine until ctx is done, Stop is called or the match is
// over. It returns ctx.Err() when the context ended the loop.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	start := time.Now()
	g.logger.Debug("game loop started", "tickRate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			g.logger.Debug("game loop cancelled")
			return ctx.Err()
		case <-g.stopChan:
			g.engine.Stop()
			g.logger.Debug("game loop stopped")
			return nil
		case <-ticker.C:
			res := g.engine.Tick(time.Since(start))
			if g.onTick != nil {
				g.onTick(res)
			}
			if res.State == cfg.MatchStateGameOver || g.engine.Stopped() {
				g.logger.Debug("game loop finished", "state", res.State)
				return nil
			}
		}
	}
}

// Stop ends Run and stops the engine, whether or not Run was ever called. It
// is safe to call more than once and from any goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
		g.engine.Stop()
	})
}
