// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"errors"
	"fmt"
)

// CellKind classifies a grid cell.
type CellKind uint8

// Cell kinds
const (
	Empty CellKind = iota
	Obstacle
	ColorSwitch
	DoorSwitch
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Obstacle:
		return "Obstacle"
	case ColorSwitch:
		return "ColorSwitch"
	case DoorSwitch:
		return "DoorSwitch"
	default:
		return "Unknown"
	}
}

// Validation errors returned by the grid constructors.
var (
	ErrEmptyGrid         = errors.New("world: grid has no cells")
	ErrRaggedGrid        = errors.New("world: grid rows have unequal lengths")
	ErrMultipleColor     = errors.New("world: grid has more than one color switch")
	ErrMultipleDoor      = errors.New("world: grid has more than one door switch")
	ErrUnlinkedDoor      = errors.New("world: door switch present but no linked obstacle")
	ErrDoorBlockNotFound = errors.New("world: linked door obstacle is not an obstacle cell")
)

// Grid is the static map definition: fixed dimensions, a kind per cell, and
// the linkage between the door switch and the obstacle cell it unlocks.
// A Grid is never mutated after construction; transient door state is passed
// into TestMove instead, so planning can reason about hypothetical door
// states without touching the canonical map.
type Grid struct {
	width  int
	height int
	cells  [][]CellKind // indexed [y][x]

	colorSwitch    Position
	hasColorSwitch bool

	doorSwitch Position
	doorBlock  Position
	hasDoor    bool
}

// New builds a grid from a row-major kind table. The table must be
// rectangular and must not contain a DoorSwitch cell; door-bearing layouts
// go through NewWithDoor so the switch is always linked to an obstacle.
func New(kinds [][]CellKind) (*Grid, error) {
	g, err := build(kinds)
	if err != nil {
		return nil, err
	}
	if g.hasDoor {
		return nil, ErrUnlinkedDoor
	}
	return g, nil
}

// NewWithDoor builds a grid whose single DoorSwitch cell unlocks the
// obstacle at block once visited.
func NewWithDoor(kinds [][]CellKind, block Position) (*Grid, error) {
	g, err := build(kinds)
	if err != nil {
		return nil, err
	}
	if !g.hasDoor {
		return nil, ErrUnlinkedDoor
	}
	if !g.InBounds(block) || g.KindAt(block) != Obstacle {
		return nil, fmt.Errorf("%w: %v", ErrDoorBlockNotFound, block)
	}
	g.doorBlock = block
	return g, nil
}

func build(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		width:  len(kinds[0]),
		height: len(kinds),
		cells:  make([][]CellKind, len(kinds)),
	}

	for y, row := range kinds {
		if len(row) != g.width {
			return nil, ErrRaggedGrid
		}
		g.cells[y] = make([]CellKind, g.width)
		copy(g.cells[y], row)

		for x, kind := range row {
			switch kind {
			case ColorSwitch:
				if g.hasColorSwitch {
					return nil, ErrMultipleColor
				}
				g.hasColorSwitch = true
				g.colorSwitch = Position{X: x, Y: y}
			case DoorSwitch:
				if g.hasDoor {
					return nil, ErrMultipleDoor
				}
				g.hasDoor = true
				g.doorSwitch = Position{X: x, Y: y}
			}
		}
	}

	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// KindAt returns the kind of the cell at p. Out-of-bounds positions report
// Obstacle so callers treat the border as solid.
func (g *Grid) KindAt(p Position) CellKind {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[p.Y][p.X]
}

// ColorSwitchPosition returns the coordinate of the color switch tile,
// if the grid has one.
func (g *Grid) ColorSwitchPosition() (Position, bool) {
	return g.colorSwitch, g.hasColorSwitch
}

// DoorSwitchPosition returns the coordinate of the door switch tile,
// if the grid has one.
func (g *Grid) DoorSwitchPosition() (Position, bool) {
	return g.doorSwitch, g.hasDoor
}

// DoorBlock returns the obstacle cell that opens when the door switch has
// been visited, if the grid has a door.
func (g *Grid) DoorBlock() (Position, bool) {
	return g.doorBlock, g.hasDoor
}

// IsOpenAt reports whether the cell at p can be stood on given the door
// state. The linked door obstacle counts as open once doorOpen is true.
func (g *Grid) IsOpenAt(p Position, doorOpen bool) bool {
	if !g.InBounds(p) {
		return false
	}
	if g.KindAt(p) != Obstacle {
		return true
	}
	return doorOpen && g.hasDoor && p == g.doorBlock
}

// TestMove checks whether a single-tile move by (dx, dy) from a position is
// legal under the given door state. It returns the destination and true when
// the move is accepted, or the original position and false when the
// destination is out of bounds or blocked by an obstacle.
func (g *Grid) TestMove(from Position, dx, dy int, doorOpen bool) (Position, bool) {
	dest := from.Offset(dx, dy)
	if !g.IsOpenAt(dest, doorOpen) {
		return from, false
	}
	return dest, true
}
