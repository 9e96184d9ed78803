package main

import (
	"context"
	"io"
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/charmbracelet/log"
)

func TestPlayAll(t *testing.T) {
	r := runner{
		difficulty: cfg.DifficultyEasy,
		target:     1,
		seed:       11,
		tickRate:   60,
		logger:     log.New(io.Discard),
	}

	results, err := r.playAll(context.Background(), 4, 2)
	if err != nil {
		t.Fatalf("playAll: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, res := range results {
		if res.Scores.Player1+res.Scores.Player2 != 1 {
			t.Errorf("match %d: scores %+v, want a single point", i, res.Scores)
		}
		if res.Winner != "CPU Left" && res.Winner != "CPU Right" {
			t.Errorf("match %d: winner %q", i, res.Winner)
		}
	}
}

func TestPlayAllCancelled(t *testing.T) {
	r := runner{
		difficulty: cfg.DifficultyHard,
		target:     50,
		seed:       1,
		tickRate:   60,
		logger:     log.New(io.Discard),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.playAll(ctx, 2, 2); err == nil {
		t.Fatal("cancelled run reported success")
	}
}
