package archetypes

import (
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	HumanPaddle = newArchetype(
		tags.Paddle,
		tags.Human,
		components.Paddle,
		components.Input,
		components.Object,
	)
	AIPaddle = newArchetype(
		tags.Paddle,
		tags.AI,
		components.Paddle,
		components.Controller,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
		components.MatchEvents,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
