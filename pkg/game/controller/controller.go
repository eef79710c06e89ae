// Package controller drives agents while automatic mode is active. The
// planner adapter is the only bridge between the search core and the live
// game: it snapshots the configuration, plans once, and replays the moves
// one per tick through the same legality path as manual control.
package controller

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"

	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/gameplay"
	"colorgate/pkg/game/planner"
	"colorgate/pkg/game/state"
)

// Controller reacts to automatic-mode ticks.
type Controller interface {
	// Initialize is called when automatic mode is activated. Implementations
	// must tolerate repeated activation.
	Initialize(g *state.Game)
	// Step is called once per tick while automatic mode is on.
	Step(g *state.Game)
}

// Snapshot captures the live configuration as an immutable search space.
// Color flags derive from comparing each agent's color to its target; the
// door flag is the session's door state. No live references are retained:
// the grid is immutable and the joint state is copied.
func Snapshot(g *state.Game) (*planner.Space, error) {
	specs := make([]planner.AgentSpec, len(g.Agents))
	start := planner.JointState{
		Positions: make([]world.Position, len(g.Agents)),
		Colors:    make([]bool, len(g.Agents)),
		DoorOpen:  g.DoorOpen,
	}
	for i, a := range g.Agents {
		specs[i] = planner.AgentSpec{Target: g.TargetPos[i]}
		start.Positions[i] = a.Pos
		start.Colors[i] = g.HasTargetColor(i)
	}
	return planner.NewSpace(g.Grid, specs, start)
}

// PlanController plans once with a search strategy and then replays the
// moves one per tick. Replay assumes the live world has not diverged from
// the snapshot; if it has, the underlying move application fails closed and
// the agent simply stays put.
type PlanController struct {
	strategy    planner.Strategy
	plan        []planner.Move
	initialized bool
}

// NewPlanController returns an adapter around the given strategy.
func NewPlanController(strategy planner.Strategy) *PlanController {
	return &PlanController{strategy: strategy}
}

// Initialize snapshots the session and plans. A second activation is a
// no-op: the existing plan keeps playing out.
func (c *PlanController) Initialize(g *state.Game) {
	if c.initialized {
		return
	}
	c.initialized = true

	space, err := Snapshot(g)
	if err != nil {
		g.AddMessage(fmt.Sprintf(gotext.Get("Cannot plan: %v"), err))
		return
	}

	started := time.Now()
	result := c.strategy.Plan(space)
	elapsed := time.Since(started)

	switch result.Outcome {
	case planner.OutcomeAlreadySolved:
		g.AddMessage(gotext.Get("Puzzle is already solved, nothing to plan."))
	case planner.OutcomeUnreachable:
		g.AddMessage(fmt.Sprintf(gotext.Get("%s found no plan (searched for %s)."),
			c.strategy.Name(), elapsed.Round(time.Microsecond)))
	case planner.OutcomeSolved:
		c.plan = result.Moves
		g.AddMessage(fmt.Sprintf(gotext.Get("%s planned %d moves in %s."),
			c.strategy.Name(), len(result.Moves), elapsed.Round(time.Microsecond)))
	}
}

// Step pops the next planned move, makes its agent active and applies it.
func (c *PlanController) Step(g *state.Game) {
	if len(c.plan) == 0 {
		return
	}
	m := c.plan[0]
	c.plan = c.plan[1:]

	g.ActiveAgent = m.Agent
	gameplay.ApplyMove(g, m.Agent, m.DX, m.DY)
}

// Remaining returns how many planned moves are still queued.
func (c *PlanController) Remaining() int {
	return len(c.plan)
}
