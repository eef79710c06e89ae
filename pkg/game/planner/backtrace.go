package planner

// parentLink records how a state was first discovered: the key of its
// predecessor and the move that produced it. The start state carries an
// empty predecessor key as the sentinel; real keys are never empty.
type parentLink struct {
	prevKey string
	move    Move
}

// parentMap maps a state key to its discovery predecessor.
type parentMap map[string]parentLink

// backtrace walks the predecessor chain from goalKey back to the start
// sentinel, collecting moves in reverse, then flips them into chronological
// order. The chain is finite and acyclic: BFS and DFS parent a state at most
// once, and A* re-parents only on a strict cost improvement.
func backtrace(parents parentMap, goalKey string) []Move {
	var moves []Move
	for key := goalKey; ; {
		link := parents[key]
		if link.prevKey == "" {
			break
		}
		moves = append(moves, link.move)
		key = link.prevKey
	}

	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
