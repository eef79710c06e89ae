package planner_test

import (
	"errors"
	"reflect"
	"testing"

	"colorgate/pkg/engine/world"
	"colorgate/pkg/game/planner"
	"colorgate/pkg/game/setup"
)

// The classic puzzle needs 24 moves: 8 for the top agent, 6 for the middle
// one and 10 for the bottom one, whose shortest route to the color switch
// already passes over the door switch.
const classicOptimum = 24

func defaultSpecs() []planner.AgentSpec {
	specs := make([]planner.AgentSpec, len(setup.DefaultTargets))
	for i, t := range setup.DefaultTargets {
		specs[i] = planner.AgentSpec{Target: t}
	}
	return specs
}

func defaultStart() planner.JointState {
	return planner.JointState{
		Positions: append([]world.Position(nil), setup.DefaultStarts...),
		Colors:    make([]bool, len(setup.DefaultStarts)),
	}
}

func newDefaultSpace(t *testing.T) *planner.Space {
	t.Helper()
	space, err := planner.NewSpace(setup.DefaultGrid(), defaultSpecs(), defaultStart())
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return space
}

// openSpace builds a W x H grid with no obstacles or switches and a single
// agent that already holds its color.
func openSpace(t *testing.T, w, h int, start, target world.Position) *planner.Space {
	t.Helper()
	kinds := make([][]world.CellKind, h)
	for y := range kinds {
		kinds[y] = make([]world.CellKind, w)
	}
	grid, err := world.New(kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	space, err := planner.NewSpace(grid,
		[]planner.AgentSpec{{Target: target}},
		planner.JointState{Positions: []world.Position{start}, Colors: []bool{true}})
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return space
}

// replay applies every move of a plan from the space's start state and fails
// the test on the first rejected move. It returns the final state.
func replay(t *testing.T, space *planner.Space, moves []planner.Move) planner.JointState {
	t.Helper()
	s := space.Start()
	for i, m := range moves {
		next, ok := space.NextState(s, m.Agent, m.DX, m.DY)
		if !ok {
			t.Fatalf("move %d %+v rejected during replay", i, m)
		}
		s = next
	}
	return s
}

func allStrategies(t *testing.T) []planner.Strategy {
	t.Helper()
	var out []planner.Strategy
	for _, name := range []string{"bfs", "dfs", "astar"} {
		s, err := planner.New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		out = append(out, s)
	}
	return out
}

func TestNew_UnknownStrategy(t *testing.T) {
	if _, err := planner.New("dijkstra"); err == nil {
		t.Error("New(\"dijkstra\") succeeded, want error")
	}
}

func TestScenarioOpenGrid(t *testing.T) {
	// One agent on an empty 5x5 grid, (0,0) to (2,2): the minimum is four
	// moves, two in +x and two in +y in any order.
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			space := openSpace(t, 5, 5, world.Position{X: 0, Y: 0}, world.Position{X: 2, Y: 2})
			result := s.Plan(space)

			if result.Outcome != planner.OutcomeSolved {
				t.Fatalf("outcome = %v, want Solved", result.Outcome)
			}
			end := replay(t, space, result.Moves)
			if !space.IsGoal(end) {
				t.Errorf("replayed plan ends at %v, not at the goal", end.Positions)
			}

			switch s.Name() {
			case "bfs", "astar":
				if len(result.Moves) != 4 {
					t.Errorf("%s plan length = %d, want 4", s.Name(), len(result.Moves))
				}
			case "dfs":
				if len(result.Moves) < 4 {
					t.Errorf("dfs plan length = %d, want >= 4", len(result.Moves))
				}
			}
		})
	}
}

func TestScenarioClassicPuzzle(t *testing.T) {
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			space := newDefaultSpace(t)
			result := s.Plan(space)

			if result.Outcome != planner.OutcomeSolved {
				t.Fatalf("outcome = %v, want Solved", result.Outcome)
			}

			// Validity: replay never rejects and ends at the goal.
			end := replay(t, space, result.Moves)
			if !space.IsGoal(end) {
				t.Errorf("replayed plan ends at %v, not at the goal", end.Positions)
			}

			// Door gating: no agent may be beyond the wall while the door
			// is still closed.
			st := space.Start()
			for i, m := range result.Moves {
				next, ok := space.NextState(st, m.Agent, m.DX, m.DY)
				if !ok {
					t.Fatalf("move %d rejected", i)
				}
				st = next
				for a, p := range st.Positions {
					if p.X >= 3 && !st.DoorOpen {
						t.Fatalf("after move %d agent %d is at %v with the door closed", i, a, p)
					}
				}
			}

			switch s.Name() {
			case "bfs", "astar":
				if len(result.Moves) != classicOptimum {
					t.Errorf("%s plan length = %d, want %d", s.Name(), len(result.Moves), classicOptimum)
				}
			case "dfs":
				if len(result.Moves) < classicOptimum {
					t.Errorf("dfs plan length = %d, want >= %d", len(result.Moves), classicOptimum)
				}
			}
		})
	}
}

func TestScenarioAlreadySolved(t *testing.T) {
	// Agents start on their targets with colors acquired.
	start := planner.JointState{
		Positions: append([]world.Position(nil), setup.DefaultTargets...),
		Colors:    []bool{true, true, true},
		DoorOpen:  true,
	}
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			space, err := planner.NewSpace(setup.DefaultGrid(), defaultSpecs(), start)
			if err != nil {
				t.Fatalf("NewSpace: %v", err)
			}
			result := s.Plan(space)
			if result.Outcome != planner.OutcomeAlreadySolved {
				t.Errorf("outcome = %v, want AlreadySolved", result.Outcome)
			}
			if len(result.Moves) != 0 {
				t.Errorf("moves = %v, want empty", result.Moves)
			}
		})
	}
}

func TestScenarioUnreachable(t *testing.T) {
	// A wall with no door: the target column cannot be reached.
	kinds := [][]world.CellKind{
		{world.Empty, world.Obstacle, world.Empty},
	}
	grid, err := world.New(kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := planner.JointState{
		Positions: []world.Position{{X: 0, Y: 0}},
		Colors:    []bool{true},
	}
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			space, err := planner.NewSpace(grid,
				[]planner.AgentSpec{{Target: world.Position{X: 2, Y: 0}}}, start)
			if err != nil {
				t.Fatalf("NewSpace: %v", err)
			}
			result := s.Plan(space)
			if result.Outcome != planner.OutcomeUnreachable {
				t.Errorf("outcome = %v, want Unreachable", result.Outcome)
			}
			if len(result.Moves) != 0 {
				t.Errorf("moves = %v, want empty", result.Moves)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			first := s.Plan(newDefaultSpace(t))
			second := s.Plan(newDefaultSpace(t))
			if first.Outcome != second.Outcome || !reflect.DeepEqual(first.Moves, second.Moves) {
				t.Errorf("%s produced different plans across identical runs", s.Name())
			}
		})
	}
}

func TestMonotonicity(t *testing.T) {
	// Across an entire replayed plan, no color flag and not the door flag
	// ever drops back to false.
	space := newDefaultSpace(t)
	result := planner.BFS{}.Plan(space)
	if result.Outcome != planner.OutcomeSolved {
		t.Fatalf("outcome = %v, want Solved", result.Outcome)
	}

	st := space.Start()
	for i, m := range result.Moves {
		next, ok := space.NextState(st, m.Agent, m.DX, m.DY)
		if !ok {
			t.Fatalf("move %d rejected", i)
		}
		if st.DoorOpen && !next.DoorOpen {
			t.Fatalf("door flag reverted after move %d", i)
		}
		for a := range st.Colors {
			if st.Colors[a] && !next.Colors[a] {
				t.Fatalf("color flag of agent %d reverted after move %d", a, i)
			}
		}
		st = next
	}
}

func TestDFSNotNecessarilyOptimalButValid(t *testing.T) {
	// A map with two routes of different lengths around a pillar.
	kinds := [][]world.CellKind{
		{world.Empty, world.Empty, world.Empty, world.Empty},
		{world.Empty, world.Obstacle, world.Obstacle, world.Empty},
		{world.Empty, world.Empty, world.Empty, world.Empty},
	}
	grid, err := world.New(kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := planner.JointState{
		Positions: []world.Position{{X: 0, Y: 1}},
		Colors:    []bool{true},
	}
	specs := []planner.AgentSpec{{Target: world.Position{X: 3, Y: 1}}}

	newSpace := func() *planner.Space {
		space, err := planner.NewSpace(grid, specs, start.Clone())
		if err != nil {
			t.Fatalf("NewSpace: %v", err)
		}
		return space
	}

	bfs := planner.BFS{}.Plan(newSpace())
	dfs := planner.DFS{}.Plan(newSpace())
	if bfs.Outcome != planner.OutcomeSolved || dfs.Outcome != planner.OutcomeSolved {
		t.Fatalf("outcomes = %v, %v, want Solved, Solved", bfs.Outcome, dfs.Outcome)
	}

	space := newSpace()
	end := replay(t, space, dfs.Moves)
	if !space.IsGoal(end) {
		t.Error("DFS plan does not reach the goal")
	}
	if len(dfs.Moves) < len(bfs.Moves) {
		t.Errorf("dfs plan (%d moves) shorter than bfs plan (%d moves)", len(dfs.Moves), len(bfs.Moves))
	}
}

func TestAStarMatchesBFSLength(t *testing.T) {
	bfs := planner.BFS{}.Plan(newDefaultSpace(t))
	astar := planner.AStar{}.Plan(newDefaultSpace(t))
	if len(astar.Moves) != len(bfs.Moves) {
		t.Errorf("astar plan length = %d, bfs = %d; admissible heuristic must preserve optimality",
			len(astar.Moves), len(bfs.Moves))
	}
}

func TestNewSpace_MissingColorSwitchFailsFast(t *testing.T) {
	kinds := [][]world.CellKind{{world.Empty, world.Empty}}
	grid, err := world.New(kinds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := planner.JointState{
		Positions: []world.Position{{X: 0, Y: 0}},
		Colors:    []bool{false}, // still needs its color
	}
	_, err = planner.NewSpace(grid, []planner.AgentSpec{{Target: world.Position{X: 1, Y: 0}}}, start)
	if !errors.Is(err, planner.ErrNoColorSwitch) {
		t.Errorf("NewSpace err = %v, want ErrNoColorSwitch", err)
	}
}

func TestNewSpace_Validation(t *testing.T) {
	grid := setup.DefaultGrid()

	t.Run("no agents", func(t *testing.T) {
		_, err := planner.NewSpace(grid, nil, planner.JointState{})
		if !errors.Is(err, planner.ErrNoAgents) {
			t.Errorf("err = %v, want ErrNoAgents", err)
		}
	})

	t.Run("agent count mismatch", func(t *testing.T) {
		start := defaultStart()
		start.Colors = start.Colors[:2]
		_, err := planner.NewSpace(grid, defaultSpecs(), start)
		if !errors.Is(err, planner.ErrAgentCount) {
			t.Errorf("err = %v, want ErrAgentCount", err)
		}
	})

	t.Run("agent on obstacle", func(t *testing.T) {
		start := defaultStart()
		start.Positions[0] = world.Position{X: 3, Y: 0}
		_, err := planner.NewSpace(grid, defaultSpecs(), start)
		if !errors.Is(err, planner.ErrBadStart) {
			t.Errorf("err = %v, want ErrBadStart", err)
		}
	})

	t.Run("agent on open door gap", func(t *testing.T) {
		start := defaultStart()
		start.Positions[0] = world.Position{X: 3, Y: 2}
		start.DoorOpen = true
		if _, err := planner.NewSpace(grid, defaultSpecs(), start); err != nil {
			t.Errorf("err = %v, want nil (gap is standable with door open)", err)
		}
	})
}
