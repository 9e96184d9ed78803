package main

import (
	"testing"

	cfg "github.com/automoto/pong/config"
)

func TestLayoutFollowsDefaultArena(t *testing.T) {
	g := &Game{}
	for _, size := range [][2]int{{800, 400}, {1600, 800}, {320, 240}} {
		w, h := g.Layout(size[0], size[1])
		if w != int(cfg.Defaults.ArenaWidth) || h != int(cfg.Defaults.ArenaHeight) {
			t.Fatalf("Layout(%d, %d) = %dx%d, want the default arena", size[0], size[1], w, h)
		}
	}
}
