// Package setup builds puzzle configurations.
package setup

import (
	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/state"
)

// The classic 5x5 puzzle: an obstacle wall at x=3, the color switch at
// (2,1), the door switch at (2,3) and the wall cell at (3,2) opening once
// the switch is visited. Three agents start on the left edge and must end
// on the right edge, each with its own color.
var (
	DefaultStarts  = []world.Position{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 4}}
	DefaultTargets = []world.Position{{X: 4, Y: 0}, {X: 4, Y: 2}, {X: 4, Y: 4}}
	DefaultColors  = []state.Color{state.Red, state.Green, state.Blue}
)

const (
	o = world.Empty
	x = world.Obstacle
	c = world.ColorSwitch
	d = world.DoorSwitch
)

// DefaultGrid builds the canonical puzzle map. The layout is a compile-time
// constant, so a construction failure is a programming error and panics.
func DefaultGrid() *world.Grid {
	kinds := [][]world.CellKind{
		{o, o, o, x, o},
		{o, o, c, x, o},
		{o, o, o, x, o},
		{o, o, d, x, o},
		{o, o, o, x, o},
	}
	g, err := world.NewWithDoor(kinds, world.Position{X: 3, Y: 2})
	if err != nil {
		panic("setup: default grid invalid: " + err.Error())
	}
	return g
}

// NewGame assembles a fresh default puzzle session.
func NewGame() *state.Game {
	return state.NewGame(DefaultGrid(), DefaultStarts, DefaultTargets, DefaultColors)
}
