package planner

import "fmt"

// Outcome classifies a planning result.
type Outcome int

// Outcomes
const (
	// OutcomeSolved means a plan was found; Moves holds it.
	OutcomeSolved Outcome = iota
	// OutcomeAlreadySolved means the start state already satisfies the goal.
	OutcomeAlreadySolved
	// OutcomeUnreachable means the frontier emptied without finding a goal.
	OutcomeUnreachable
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "Solved"
	case OutcomeAlreadySolved:
		return "AlreadySolved"
	case OutcomeUnreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// Result is what a strategy returns. Moves is the chronological plan and is
// empty for both OutcomeAlreadySolved and OutcomeUnreachable; the Outcome
// keeps the two cases distinguishable.
type Result struct {
	Outcome Outcome
	Moves   []Move
}

// Strategy computes a plan over a search space. Plan runs synchronously to
// completion; it never fails, worst case is an Unreachable result.
type Strategy interface {
	Name() string
	Plan(space *Space) Result
}

// New returns the strategy registered under name: "bfs", "dfs" or "astar".
func New(name string) (Strategy, error) {
	switch name {
	case "bfs":
		return BFS{}, nil
	case "dfs":
		return DFS{}, nil
	case "astar":
		return AStar{}, nil
	default:
		return nil, fmt.Errorf("planner: unknown strategy %q", name)
	}
}
