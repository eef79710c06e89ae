package world

// Position is a cell coordinate. X grows to the right, Y grows downward,
// so (0, 0) is the top-left cell of the grid.
type Position struct {
	X int
	Y int
}

// Offset returns the position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
