// Package planner computes move plans for the puzzle by searching the joint
// state space of all agents. A plan drives the puzzle from a snapshot of the
// live configuration to a configuration where every agent has acquired its
// target color and stands on its target cell.
package planner

// Move is one planned step: the selected agent moves by a unit delta.
type Move struct {
	Agent int
	DX    int
	DY    int
}

// moveDeltas is the successor expansion order: down, up, right, left.
// A fixed order keeps every strategy's output reproducible.
var moveDeltas = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
