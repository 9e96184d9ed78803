// Command headless plays AI-vs-AI matches without a window, many at a time,
// and logs the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/core"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	matches := flag.Int("matches", 8, "number of matches to play")
	difficulty := flag.String("difficulty", cfg.Defaults.Difficulty.String(), "AI difficulty: easy, medium or hard")
	target := flag.Int("target", cfg.Defaults.TargetScore, "points needed to win")
	seed := flag.Int64("seed", 0, "base random seed, match i uses seed+i (0 = time based)")
	realtime := flag.Bool("realtime", false, "tick on the wall clock instead of as fast as possible")
	tickRate := flag.Int("tickrate", cfg.Host.TickRate, "ticks per second")
	parallel := flag.Int("parallel", runtime.NumCPU(), "matches played at the same time")
	level := flag.String("loglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal("bad -loglevel", "err", err)
	}
	logger.SetLevel(lvl)

	d, err := cfg.ParseDifficulty(*difficulty)
	if err != nil {
		logger.Fatal("bad -difficulty", "err", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner{
		difficulty: d,
		target:     *target,
		seed:       *seed,
		realtime:   *realtime,
		tickRate:   *tickRate,
		logger:     logger,
	}

	logger.Info("starting", "matches", *matches, "difficulty", d, "target", *target, "seed", *seed)
	results, err := r.playAll(ctx, *matches, *parallel)
	if err != nil {
		logger.Fatal("run failed", "err", err)
	}

	wins := map[string]int{}
	for _, res := range results {
		wins[res.Winner]++
	}
	for name, n := range wins {
		logger.Info("summary", "player", name, "wins", n)
	}
}

type runner struct {
	difficulty cfg.Difficulty
	target     int
	seed       int64
	realtime   bool
	tickRate   int
	logger     *log.Logger
}

// playAll plays n independent matches, at most parallel at a time. Each
// match owns its engine, so nothing is shared between goroutines except the
// results slice, where every match writes its own slot.
func (r runner) playAll(ctx context.Context, n, parallel int) ([]core.MatchResult, error) {
	results := make([]core.MatchResult, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallel))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			res, err := r.play(ctx, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r runner) play(ctx context.Context, i int) (*core.MatchResult, error) {
	logger := r.logger.With("match", i)
	engine, err := core.NewEngine(core.Config{
		Player1Name:  "CPU Left",
		Player2Name:  "CPU Right",
		Player1IsAI:  true,
		Player2IsAI:  true,
		AIDifficulty: r.difficulty,
		TargetScore:  r.target,
		Seed:         r.seed + int64(i),
	}, core.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	defer engine.Stop()

	started := time.Now()
	var res *core.MatchResult
	if r.realtime {
		res, err = r.playRealtime(ctx, engine, logger)
	} else {
		res, err = core.Simulate(ctx, engine, time.Second/time.Duration(r.tickRate), cfg.Host.MaxHeadlessTicks)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("result", "winner", res.Winner,
		"score", fmt.Sprintf("%d-%d", res.Scores.Player1, res.Scores.Player2),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return res, nil
}

func (r runner) playRealtime(ctx context.Context, engine *core.Engine, logger *log.Logger) (*core.MatchResult, error) {
	var result *core.MatchResult
	loop := core.NewGameLoop(engine, r.tickRate, logger, func(res core.TickResult) {
		if res.Result != nil {
			result = res.Result
		}
	})
	engine.Start()
	if err := loop.Run(ctx); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, core.ErrTickLimit
	}
	return result, nil
}
