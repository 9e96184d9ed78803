package scenes

import (
	"image/color"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/core"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebug outlines every collision object and marks where each AI aims.
func drawDebug(screen *ebiten.Image, snap core.Snapshot, view core.DebugView) {
	for _, obj := range view.Colliders {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if hasTag(obj.Tags, tags.ResolvBall) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if hasTag(obj.Tags, tags.ResolvPaddle) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	red := color.RGBA{255, 0, 0, 255}
	for _, target := range view.Targets {
		paddle := snap.Left
		labelX := int(snap.ArenaWidth / 8)
		if target.Side == cfg.SideRight {
			paddle = snap.Right
			labelX = int(snap.ArenaWidth * 7 / 8)
		}
		vector.FillRect(screen, float32(paddle.X-10), float32(target.TargetY), float32(paddle.W+20), 1, red, false)
		drawAt(screen, target.Difficulty.String(), fonts.Small, labelX, int(snap.ArenaHeight)-10, red)
	}
}

func hasTag(list []string, tag string) bool {
	for _, t := range list {
		if t == tag {
			return true
		}
	}
	return false
}
