package planner

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// BFS explores the joint state space in breadth-first order. Every
// transition costs one move and states are expanded by increasing depth, so
// the first goal reached uses the minimum possible number of moves.
type BFS struct{}

// Name returns the strategy identifier.
func (BFS) Name() string { return "bfs" }

// Plan runs the search and reconstructs the move list from the parent map.
func (BFS) Plan(space *Space) Result {
	start := space.Start()
	if space.IsGoal(start) {
		return Result{Outcome: OutcomeAlreadySolved}
	}

	frontier := queue.New[JointState]()
	frontier.Enqueue(start)

	visited := mapset.New[string]()
	visited.Put(start.Key())

	parents := parentMap{start.Key(): {}}

	for !frontier.Empty() {
		current := frontier.Dequeue()
		curKey := current.Key()

		for agent := 0; agent < space.NumAgents(); agent++ {
			for _, d := range moveDeltas {
				next, ok := space.NextState(current, agent, d[0], d[1])
				if !ok {
					continue
				}

				key := next.Key()
				if visited.Has(key) {
					continue
				}
				visited.Put(key)
				parents[key] = parentLink{
					prevKey: curKey,
					move:    Move{Agent: agent, DX: d[0], DY: d[1]},
				}

				if space.IsGoal(next) {
					return Result{Outcome: OutcomeSolved, Moves: backtrace(parents, key)}
				}
				frontier.Enqueue(next)
			}
		}
	}

	return Result{Outcome: OutcomeUnreachable}
}
