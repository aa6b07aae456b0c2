package crawler

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// ErrInvalidSize is returned when an entity would have a non-positive size.
var ErrInvalidSize = errors.New("crawler: entity size must be positive")

// Entity is a positioned, sized, colored game object with a liveness flag.
// Size and color are fixed at construction; liveness only goes from alive to dead.
type Entity struct {
	X, Y   int
	width  int
	height int
	color  core.Color
	alive  bool
}

// NewEntity creates a live entity with its top-left corner at (x, y).
func NewEntity(x, y int, color core.Color, width, height int) (*Entity, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Entity{
		X:      x,
		Y:      y,
		width:  width,
		height: height,
		color:  color,
		alive:  true,
	}, nil
}

// Width returns the entity width.
func (e *Entity) Width() int { return e.width }

// Height returns the entity height.
func (e *Entity) Height() int { return e.height }

// Fill returns the entity color.
func (e *Entity) Fill() core.Color { return e.color }

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.width, e.height)
}

// Alive reports whether the entity is still alive.
func (e *Entity) Alive() bool { return e.alive }

// Kill marks the entity dead. It returns true only for the call that
// performed the transition.
func (e *Entity) Kill() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	return true
}

// MoveBy shifts the entity. Position is unconstrained.
func (e *Entity) MoveBy(d core.Displacement) {
	e.X += d.DX
	e.Y += d.DY
}

// Position formats the top-left corner as "x, y".
func (e *Entity) Position() string {
	return fmt.Sprintf("%d, %d", e.X, e.Y)
}
