package core

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/yohamta/donburi"
)

// Collider is a copy of one collision-space object. Rect is the entity's box;
// the object in the space is larger by Margin on every side.
type Collider struct {
	Rect
	Margin float64
	Tags   []string
}

// AITarget is where a controller is currently aiming.
type AITarget struct {
	Side       cfg.Side
	Difficulty cfg.Difficulty
	TargetY    float64
}

// DebugView is the overlay data for hosts that draw collision boxes and aim
// points.
type DebugView struct {
	Colliders []Collider
	Targets   []AITarget
}

// Debug copies the collision space and the controllers' aim.
func (e *Engine) Debug() DebugView {
	worldMu.RLock()
	defer worldMu.RUnlock()

	var view DebugView
	if entry, ok := components.Space.First(e.ecs.World); ok {
		for _, obj := range components.Space.Get(entry).Objects() {
			var margin float64
			if owner, ok := obj.Data.(*donburi.Entry); ok && owner.HasComponent(components.Object) {
				margin = components.Object.Get(owner).Margin
			}
			view.Colliders = append(view.Colliders, Collider{
				Rect:   Rect{X: obj.X + margin, Y: obj.Y + margin, W: obj.W - 2*margin, H: obj.H - 2*margin},
				Margin: margin,
				Tags:   append([]string(nil), obj.Tags()...),
			})
		}
	}

	for _, side := range []cfg.Side{cfg.SideLeft, cfg.SideRight} {
		entry, ok := systems.GetPaddleEntry(e.ecs.World, side)
		if !ok || !entry.HasComponent(components.Controller) {
			continue
		}
		ctrl := components.Controller.Get(entry)
		view.Targets = append(view.Targets, AITarget{
			Side:       side,
			Difficulty: ctrl.Difficulty(),
			TargetY:    ctrl.TargetY(),
		})
	}
	return view
}
