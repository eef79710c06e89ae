// Package gameplay provides the live game logic: move application, switch
// side effects and the completion test. The same move-legality path serves
// manual control and plan replay.
package gameplay

import (
	engineinput "colorgate/pkg/engine/input"
	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/state"
)

// ApplyMove moves one agent by (dx, dy) if the move is legal under the
// current door state, and reports whether the agent moved. An illegal move
// leaves the agent in place, so replaying a stale plan can never corrupt
// the session.
func ApplyMove(g *state.Game, agent, dx, dy int) bool {
	if agent < 0 || agent >= len(g.Agents) {
		return false
	}
	a := g.Agents[agent]
	dest, ok := g.Grid.TestMove(a.Pos, dx, dy, g.DoorOpen)
	if !ok {
		return false
	}
	a.Pos = dest
	return true
}

// ApplySwitches applies tile side effects for every agent: standing on the
// color switch paints the agent its target color, standing on the door
// switch opens the door for everyone. Both effects only ever turn on.
func ApplySwitches(g *state.Game) {
	for i, a := range g.Agents {
		switch g.Grid.KindAt(a.Pos) {
		case world.DoorSwitch:
			g.DoorOpen = true
		case world.ColorSwitch:
			a.Color = g.TargetColors[i]
		}
	}
}

// Complete reports whether every agent stands on its target cell with its
// target color.
func Complete(g *state.Game) bool {
	for i, a := range g.Agents {
		if a.Pos != g.TargetPos[i] || !g.HasTargetColor(i) {
			return false
		}
	}
	return true
}

// ProcessIntent handles one manual-control intent against the active agent.
// It returns true if the intent was consumed.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionMoveNorth:
		return applyDirection(g, world.North)
	case engineinput.ActionMoveSouth:
		return applyDirection(g, world.South)
	case engineinput.ActionMoveEast:
		return applyDirection(g, world.East)
	case engineinput.ActionMoveWest:
		return applyDirection(g, world.West)
	case engineinput.ActionNextAgent:
		g.NextAgent()
		return true
	default:
		return false
	}
}

func applyDirection(g *state.Game, dir world.Direction) bool {
	dx, dy := dir.Delta()
	return ApplyMove(g, g.ActiveAgent, dx, dy)
}
