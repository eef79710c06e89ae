package planner

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// DFS explores the joint state space depth-first. It shares the state,
// transition and parent-map machinery with BFS but pops from a LIFO
// frontier, so it finds some valid plan with no length guarantee and may
// walk most of the reachable space on adversarial maps.
type DFS struct{}

// Name returns the strategy identifier.
func (DFS) Name() string { return "dfs" }

// Plan runs the search and reconstructs the move list from the parent map.
func (DFS) Plan(space *Space) Result {
	start := space.Start()
	if space.IsGoal(start) {
		return Result{Outcome: OutcomeAlreadySolved}
	}

	frontier := stack.New[JointState]()
	frontier.Push(start)

	visited := mapset.New[string]()
	visited.Put(start.Key())

	parents := parentMap{start.Key(): {}}

	for frontier.Size() > 0 {
		current := frontier.Pop()
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
				frontier.Push(next)
			}
		}
	}

	return Result{Outcome: OutcomeUnreachable}
}
