package core

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FinalScores is the score pair reported when a match ends.
type FinalScores struct {
	Player1 int
	Player2 int
}

// MatchResult describes a finished match.
type MatchResult struct {
	Winner string
	Side   cfg.Side
	Scores FinalScores
}

// TickResult reports what one Tick changed.
type TickResult struct {
	Scored       cfg.Side // side that won a point, SideNone if none
	Hit          cfg.Side // paddle the ball bounced off, SideNone if none
	State        cfg.MatchState
	StateChanged bool
	Result       *MatchResult // set on the tick that ends the match
}

// Options carries the optional collaborators of an engine. Callbacks run
// synchronously inside the call that triggers them.
type Options struct {
	Logger            *log.Logger
	OnScoreUpdate     func(player1, player2 int)
	OnGameStateChange func(state cfg.MatchState)
	OnGameEnd         func(winner string, scores FinalScores)
}

// worldMu guards the package-level state donburi keeps across worlds: world
// ids and per-world query caches. Building a world holds the write lock,
// using one holds the read lock, so engines still tick in parallel.
var worldMu sync.RWMutex

// Engine runs one match. Apart from Stop it is not safe for concurrent use;
// independent engines share no match state and may run on different
// goroutines.
type Engine struct {
	ecs    *ecs.ECS
	config Config
	arena  cfg.Arena
	opts   Options
	logger *log.Logger

	lastNow time.Duration

	cbMu    sync.Mutex // guards the callbacks in opts
	stopped atomic.Bool
}

// NewEngine validates config, builds the match world and leaves it Ready.
func NewEngine(config Config, opts Options) (*Engine, error) {
	config, arena, err := config.normalize()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		config: config,
		arena:  arena,
		opts:   opts,
		logger: logger,
	}

	worldMu.Lock()
	e.ecs = ecs.NewECS(donburi.NewWorld())
	err = e.populate()
	if err == nil {
		systems.WarmQueries(e.ecs.World)
	}
	ready := err == nil && systems.MarkReady(e.ecs)
	worldMu.Unlock()
	if err != nil {
		return nil, err
	}

	// Order matters: intent is decided before paddles move, collisions are
	// resolved before scoring.
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateControllers))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePaddles))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateBall))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateObjects))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCollisions))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateScore))
	e.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateMatch))

	e.logger.Debug("match created",
		"player1", config.Player1Name, "player2", config.Player2Name,
		"target", config.TargetScore, "arena", [2]float64{arena.Width(), arena.Height()})

	if ready {
		e.stateChanged(cfg.MatchStateReady)
	}
	return e, nil
}

func (e *Engine) populate() error {
	rng := rand.New(rand.NewSource(e.config.Seed))

	factory.CreateSpace(e.ecs.World, e.arena)
	factory.CreateMatch(e.ecs.World, e.config.Player1Name, e.config.Player2Name, e.config.TargetScore)
	factory.CreateBall(e.ecs.World, e.arena, rng)

	for _, p := range []struct {
		side cfg.Side
		isAI bool
	}{
		{cfg.SideLeft, e.config.Player1IsAI},
		{cfg.SideRight, e.config.Player2IsAI},
	} {
		if !p.isAI {
			factory.CreateHumanPaddle(e.ecs.World, p.side, e.arena)
			continue
		}
		if _, err := factory.CreateAIPaddle(e.ecs.World, p.side, e.arena, e.config.AIDifficulty, rng); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config { return e.config }

// Arena returns the match geometry.
func (e *Engine) Arena() cfg.Arena { return e.arena }

// State returns the current match state.
func (e *Engine) State() cfg.MatchState {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return e.state()
}

// Scores returns the current score pair.
func (e *Engine) Scores() FinalScores {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return e.scores()
}

func (e *Engine) state() cfg.MatchState {
	match, _ := systems.GetMatch(e.ecs.World)
	return match.State
}

func (e *Engine) scores() FinalScores {
	match, _ := systems.GetMatch(e.ecs.World)
	return FinalScores{Player1: match.Scores[0], Player2: match.Scores[1]}
}

// Tick advances the match by one step. now is a monotonic clock value; a
// value earlier than the previous one is treated as no time having passed.
// Nothing changes unless the match is Playing. Callbacks fire after the
// step, in the order score, state, end.
func (e *Engine) Tick(now time.Duration) TickResult {
	if e.stopped.Load() {
		return TickResult{State: e.State()}
	}
	if now < e.lastNow {
		now = e.lastNow
	}
	e.lastNow = now

	worldMu.RLock()
	events, _ := systems.GetEvents(e.ecs.World)
	events.TickEvents = components.TickEvents{}
	systems.SetClock(e.ecs.World, now)

	e.ecs.Update()

	result := TickResult{
		Scored: events.Scorer,
		Hit:    events.Hit,
		State:  e.state(),
	}
	scores := e.scores()
	if events.GameEnded {
		result.StateChanged = true
		result.Result = e.result()
	}
	worldMu.RUnlock()

	if result.Scored != cfg.SideNone {
		e.logger.Debug("point", "scorer", result.Scored, "player1", scores.Player1, "player2", scores.Player2)
		if cb := e.callbacks(); cb.OnScoreUpdate != nil {
			cb.OnScoreUpdate(scores.Player1, scores.Player2)
		}
	}

	if result.Result != nil {
		e.stateChanged(cfg.MatchStateGameOver)
		e.logger.Info("match over", "winner", result.Result.Winner,
			"player1", result.Result.Scores.Player1, "player2", result.Result.Scores.Player2)
		if cb := e.callbacks(); cb.OnGameEnd != nil {
			cb.OnGameEnd(result.Result.Winner, result.Result.Scores)
		}
	}
	return result
}

func (e *Engine) result() *MatchResult {
	match, _ := systems.GetMatch(e.ecs.World)
	side := match.Leader()
	return &MatchResult{
		Winner: match.NameOf(side),
		Side:   side,
		Scores: e.scores(),
	}
}

// Start serves the ball. Ready -> Playing.
func (e *Engine) Start() bool {
	return e.request(systems.StartMatch, cfg.MatchStatePlaying)
}

// Pause freezes the match. Playing -> Paused.
func (e *Engine) Pause() bool {
	return e.request(systems.PauseMatch, cfg.MatchStatePaused)
}

// Resume continues a paused match without resetting anything. Paused -> Playing.
func (e *Engine) Resume() bool {
	return e.request(systems.ResumeMatch, cfg.MatchStatePlaying)
}

// Restart zeroes the scores and resets the ball and controllers.
// GameOver -> Ready.
func (e *Engine) Restart() bool {
	return e.request(systems.RestartMatch, cfg.MatchStateReady)
}

func (e *Engine) request(apply func(*ecs.ECS) bool, to cfg.MatchState) bool {
	if e.stopped.Load() {
		return false
	}
	worldMu.RLock()
	ok := apply(e.ecs)
	worldMu.RUnlock()
	if !ok {
		return false
	}
	e.stateChanged(to)
	return true
}

func (e *Engine) stateChanged(state cfg.MatchState) {
	e.logger.Debug("state changed", "state", state)
	if cb := e.callbacks(); cb.OnGameStateChange != nil {
		cb.OnGameStateChange(state)
	}
}

// SetInput stores the movement snapshot for a human side. It is ignored for
// AI sides and returns false there.
func (e *Engine) SetInput(side cfg.Side, intent components.MovementIntent) bool {
	if e.stopped.Load() {
		return false
	}
	worldMu.RLock()
	defer worldMu.RUnlock()
	return systems.SetInput(e.ecs.World, side, intent)
}

// Stopped reports whether Stop has been called.
func (e *Engine) Stopped() bool { return e.stopped.Load() }

// Stop releases the callbacks and freezes the engine. It is safe to call
// more than once and from any goroutine; a Tick already running finishes but
// fires no callback after Stop returns.
func (e *Engine) Stop() {
	if !e.stopped.CompareAndSwap(false, true) {
		return
	}
	e.cbMu.Lock()
	e.opts.OnScoreUpdate = nil
	e.opts.OnGameStateChange = nil
	e.opts.OnGameEnd = nil
	e.cbMu.Unlock()
	e.logger.Debug("engine stopped")
}

func (e *Engine) callbacks() Options {
	e.cbMu.Lock()
	defer e.cbMu.Unlock()
	return e.opts
}
