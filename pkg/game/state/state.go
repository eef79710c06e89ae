// Package state holds the live puzzle session shared by gameplay,
// controllers and renderers.
package state

import (
	"colorgate/pkg/engine/world"
)

// Color is an RGB agent or target color.
type Color struct {
	R, G, B uint8
}

// Standard colors
var (
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// Agent is one live pawn: its current cell and current color. Agents start
// white and take their target color when they visit the color switch.
type Agent struct {
	Pos   world.Position
	Color Color
}

// Game represents the live puzzle session. The grid is immutable; the only
// mutable world fact is the DoorOpen flag, which gameplay advances
// sequentially on each tick. Nothing here is touched by a running search.
type Game struct {
	Grid *world.Grid

	Agents       []*Agent
	TargetPos    []world.Position
	TargetColors []Color

	DoorOpen bool

	ActiveAgent int
	Auto        bool

	Messages []string
}

// NewGame assembles a session. Starts, targets and target colors must have
// the same length; agents begin white on their start cells.
func NewGame(grid *world.Grid, starts, targets []world.Position, colors []Color) *Game {
	if len(starts) != len(targets) || len(starts) != len(colors) {
		panic("state: starts, targets and colors must have equal lengths")
	}

	g := &Game{
		Grid:         grid,
		TargetPos:    targets,
		TargetColors: colors,
		Messages:     make([]string, 0),
	}
	for _, p := range starts {
		g.Agents = append(g.Agents, &Agent{Pos: p, Color: White})
	}
	return g
}

// HasTargetColor reports whether agent i has acquired its target color.
func (g *Game) HasTargetColor(i int) bool {
	return g.Agents[i].Color == g.TargetColors[i]
}

// NextAgent makes the next agent active, wrapping around.
func (g *Game) NextAgent() {
	g.ActiveAgent = (g.ActiveAgent + 1) % len(g.Agents)
}

// AddMessage adds a message to the session's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
