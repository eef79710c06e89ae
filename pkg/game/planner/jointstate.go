package planner

import (
	"colorgate/pkg/engine/world"
)

// JointState describes the whole puzzle at one instant: every agent's
// position, every agent's color-acquired flag, and the shared door flag.
// It is a value type; transitions always produce a fresh copy. Both kinds of
// flag are monotonic: once true, no transition ever resets them.
type JointState struct {
	Positions []world.Position
	Colors    []bool
	DoorOpen  bool
}

// Clone returns a deep copy that shares no backing storage with s.
func (s JointState) Clone() JointState {
	c := JointState{
		Positions: make([]world.Position, len(s.Positions)),
		Colors:    make([]bool, len(s.Colors)),
		DoorOpen:  s.DoorOpen,
	}
	copy(c.Positions, s.Positions)
	copy(c.Colors, s.Colors)
	return c
}

// Equal reports structural equality of two joint states.
func (s JointState) Equal(o JointState) bool {
	if s.DoorOpen != o.DoorOpen || len(s.Positions) != len(o.Positions) || len(s.Colors) != len(o.Colors) {
		return false
	}
	for i, p := range s.Positions {
		if p != o.Positions[i] {
			return false
		}
	}
	for i, c := range s.Colors {
		if c != o.Colors[i] {
			return false
		}
	}
	return true
}

// Key packs the state into a compact string usable as a map or set key.
// Two states of the same shape produce equal keys iff they are Equal.
// Coordinates are stored as 16-bit little-endian values, flags as packed
// bits, so keys stay short even for large agent counts.
func (s JointState) Key() string {
	buf := make([]byte, 0, len(s.Positions)*4+len(s.Colors)/8+2)
	for _, p := range s.Positions {
		buf = append(buf, byte(p.X), byte(p.X>>8), byte(p.Y), byte(p.Y>>8))
	}

	var bits, n byte
	for _, c := range s.Colors {
		if c {
			bits |= 1 << n
		}
		if n++; n == 8 {
			buf = append(buf, bits)
			bits, n = 0, 0
		}
	}
	if n > 0 {
		buf = append(buf, bits)
	}

	if s.DoorOpen {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return string(buf)
}
