package planner

import (
	"errors"
	"fmt"

	"colorgate/pkg/engine/world"
)

// AgentSpec fixes one agent's goal: the cell it must occupy once its target
// color has been acquired.
type AgentSpec struct {
	Target world.Position
}

// Configuration errors reported by NewSpace.
var (
	ErrNoAgents      = errors.New("planner: no agents")
	ErrAgentCount    = errors.New("planner: start state does not match agent count")
	ErrBadStart      = errors.New("planner: start position is not standable")
	ErrNoColorSwitch = errors.New("planner: an agent still needs its color but the grid has no color switch")
)

// Space is the immutable search space for one planning invocation: the grid,
// the per-agent goals, and the snapshotted start state. The color switch
// coordinate needed by the heuristic is resolved once here, so a world that
// cannot support planning fails at construction instead of mid-search.
type Space struct {
	grid      *world.Grid
	specs     []AgentSpec
	start     JointState
	colorTile world.Position
}

// NewSpace validates the snapshot against the grid and agent specs.
func NewSpace(grid *world.Grid, specs []AgentSpec, start JointState) (*Space, error) {
	if len(specs) == 0 {
		return nil, ErrNoAgents
	}
	if len(start.Positions) != len(specs) || len(start.Colors) != len(specs) {
		return nil, fmt.Errorf("%w: %d specs, %d positions, %d color flags",
			ErrAgentCount, len(specs), len(start.Positions), len(start.Colors))
	}
	for i, p := range start.Positions {
		if !grid.IsOpenAt(p, start.DoorOpen) {
			return nil, fmt.Errorf("%w: agent %d at %v", ErrBadStart, i, p)
		}
	}

	tile, hasTile := grid.ColorSwitchPosition()
	if !hasTile {
		for i, has := range start.Colors {
			if !has {
				return nil, fmt.Errorf("%w: agent %d", ErrNoColorSwitch, i)
			}
		}
	}

	return &Space{
		grid:      grid,
		specs:     specs,
		start:     start.Clone(),
		colorTile: tile,
	}, nil
}

// NumAgents returns the number of agents in the puzzle.
func (s *Space) NumAgents() int {
	return len(s.specs)
}

// Start returns a copy of the snapshotted start state.
func (s *Space) Start() JointState {
	return s.start.Clone()
}

// NextState applies a single-tile move by one agent and returns the
// resulting joint state. The second return value is false when the move is
// rejected by the grid. Stepping onto the color switch sets that agent's
// color flag; stepping onto the door switch sets the shared door flag.
// Neither the input state nor the grid is ever mutated.
func (s *Space) NextState(state JointState, agent, dx, dy int) (JointState, bool) {
	dest, ok := s.grid.TestMove(state.Positions[agent], dx, dy, state.DoorOpen)
	if !ok {
		return JointState{}, false
	}

	next := state.Clone()
	next.Positions[agent] = dest

	switch s.grid.KindAt(dest) {
	case world.ColorSwitch:
		next.Colors[agent] = true
	case world.DoorSwitch:
		next.DoorOpen = true
	}

	// An accepted move always changes the position, but guard against a
	// no-op state anyway so searches cannot loop on self-edges.
	if next.Equal(state) {
		return JointState{}, false
	}
	return next, true
}

// IsGoal reports whether every agent stands on its target cell with its
// color flag set. The door flag plays no part in the goal.
func (s *Space) IsGoal(state JointState) bool {
	for i, spec := range s.specs {
		if state.Positions[i] != spec.Target || !state.Colors[i] {
			return false
		}
	}
	return true
}

// Heuristic estimates the remaining move count for A*: per agent, the
// Manhattan distance routed through the color tile while the color is still
// missing, or the direct distance otherwise. The door obstacle is ignored,
// which can only under-estimate the true cost, so the estimate is admissible.
func (s *Space) Heuristic(state JointState) int {
	h := 0
	for i, spec := range s.specs {
		pos := state.Positions[i]
		if state.Colors[i] {
			h += world.Manhattan(pos, spec.Target)
		} else {
			h += world.Manhattan(pos, s.colorTile) + world.Manhattan(s.colorTile, spec.Target)
		}
	}
	return h
}
