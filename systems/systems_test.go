package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a match world the way the engine does.
func newTestWorld(t *testing.T, leftAI, rightAI bool, target int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	w := e.World
	arena := cfg.DefaultArena()
	rng := rand.New(rand.NewSource(7))

	factory.CreateSpace(w, arena)
	factory.CreateMatch(w, "Left", "Right", target)
	factory.CreateBall(w, arena, rng)
	for side, isAI := range map[cfg.Side]bool{cfg.SideLeft: leftAI, cfg.SideRight: rightAI} {
		if !isAI {
			factory.CreateHumanPaddle(w, side, arena)
			continue
		}
		if _, err := factory.CreateAIPaddle(w, side, arena, cfg.DifficultyHard, rng); err != nil {
			t.Fatalf("CreateAIPaddle: %v", err)
		}
	}
	return e
}

func mustMatch(t *testing.T, w donburi.World) *components.MatchData {
	t.Helper()
	m, ok := GetMatch(w)
	if !ok {
		t.Fatal("no match entity")
	}
	return m
}

func mustBall(t *testing.T, w donburi.World) *components.BallData {
	t.Helper()
	b, ok := GetBall(w)
	if !ok {
		t.Fatal("no ball entity")
	}
	return b
}

func mustPaddle(t *testing.T, w donburi.World, side cfg.Side) *components.PaddleData {
	t.Helper()
	p, ok := GetPaddle(w, side)
	if !ok {
		t.Fatalf("no %s paddle", side)
	}
	return p
}

func mustEvents(t *testing.T, w donburi.World) *components.MatchEventsData {
	t.Helper()
	e, ok := GetEvents(w)
	if !ok {
		t.Fatal("no event entity")
	}
	return e
}
