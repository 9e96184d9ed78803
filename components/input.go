package components

import "github.com/yohamta/donburi"

// MovementIntent is the per-tick movement request for a paddle. Exactly one
// producer writes it each tick: the input port for a human side or the
// controller for an AI side.
type MovementIntent struct {
	Up   bool
	Down bool
}

// InputData holds the latest snapshot handed over by the host for a human side.
type InputData struct {
	Intent MovementIntent
}

var Input = donburi.NewComponentType[InputData]()
