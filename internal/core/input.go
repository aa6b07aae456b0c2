package core

import (
	"fmt"
	"strings"
)

// Direction is a semantic movement intent, abstracted from physical key presses.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movement directions in display order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config name ("up", "left", ...) to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("core: unknown direction %q", name)
}

// Unit returns the unit displacement for the direction.
// Screen y grows downward, so up is (0, -1).
func (d Direction) Unit() Displacement {
	switch d {
	case DirUp:
		return Displacement{DX: 0, DY: -1}
	case DirDown:
		return Displacement{DX: 0, DY: 1}
	case DirLeft:
		return Displacement{DX: -1, DY: 0}
	case DirRight:
		return Displacement{DX: 1, DY: 0}
	default:
		return Displacement{}
	}
}

// Displacement is an axis-aligned movement in surface pixels.
type Displacement struct {
	DX, DY int
}

// Scale multiplies both components by n.
func (d Displacement) Scale(n int) Displacement {
	return Displacement{DX: d.DX * n, DY: d.DY * n}
}

// IsZero reports whether the displacement moves nothing.
func (d Displacement) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}
