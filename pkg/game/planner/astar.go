package planner

import (
	"github.com/zyedidia/generic/heap"
)

// AStar orders the frontier by f = g + h, where g is moves so far and h is
// the Space heuristic. Because the heuristic is admissible, the plan found
// is as short as BFS's. Ties on f break on lower g, then insertion order,
// so output is reproducible run to run.
type AStar struct{}

// Name returns the strategy identifier.
func (AStar) Name() string { return "astar" }

type astarNode struct {
	state JointState
	g     int
	f     int
	order int
}

// Plan runs the search and reconstructs the move list from the parent map.
func (AStar) Plan(space *Space) Result {
	start := space.Start()
	if space.IsGoal(start) {
		return Result{Outcome: OutcomeAlreadySolved}
	}

	frontier := heap.New[astarNode](func(a, b astarNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		if a.g != b.g {
			return a.g < b.g
		}
		return a.order < b.order
	})

	startKey := start.Key()
	frontier.Push(astarNode{state: start, f: space.Heuristic(start)})

	gScore := map[string]int{startKey: 0}
	parents := parentMap{startKey: {}}
	order := 0

	for frontier.Size() > 0 {
		node, _ := frontier.Pop()
		curKey := node.state.Key()

		// A cheaper path to this state was found after this entry was
		// pushed; the relaxed entry is already in the frontier.
		if node.g > gScore[curKey] {
			continue
		}

		if space.IsGoal(node.state) {
			return Result{Outcome: OutcomeSolved, Moves: backtrace(parents, curKey)}
		}

		for agent := 0; agent < space.NumAgents(); agent++ {
			for _, d := range moveDeltas {
				next, ok := space.NextState(node.state, agent, d[0], d[1])
				if !ok {
					continue
				}

				key := next.Key()
				nextG := node.g + 1
				if best, seen := gScore[key]; seen && nextG >= best {
					continue
				}

				gScore[key] = nextG
				parents[key] = parentLink{
					prevKey: curKey,
					move:    Move{Agent: agent, DX: d[0], DY: d[1]},
				}
				order++
				frontier.Push(astarNode{
					state: next,
					g:     nextG,
					f:     nextG + space.Heuristic(next),
					order: order,
				})
			}
		}
	}

	return Result{Outcome: OutcomeUnreachable}
}
