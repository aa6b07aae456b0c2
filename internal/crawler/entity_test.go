package crawler

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

func TestNewEntity(t *testing.T) {
	e := mustEntity(t, 10, 20, "lightsteelblue", 16, 8)

	if e.X != 10 || e.Y != 20 {
		t.Errorf("position = (%d, %d), expected (10, 20)", e.X, e.Y)
	}
	if e.Width() != 16 || e.Height() != 8 {
		t.Errorf("size = %dx%d, expected 16x8", e.Width(), e.Height())
	}
	if e.Fill() != "lightsteelblue" {
		t.Errorf("Fill() = %q, expected lightsteelblue", e.Fill())
	}
	if !e.Alive() {
		t.Error("new entity should be alive")
	}
	if e.Bounds() != core.NewRect(10, 20, 16, 8) {
		t.Errorf("Bounds() = %+v", e.Bounds())
	}
}

func TestNewEntityInvalidSize(t *testing.T) {
	sizes := [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}}
	for _, sz := range sizes {
		_, err := NewEntity(0, 0, "red", sz[0], sz[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewEntity(%dx%d) error = %v, expected ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestEntityKillOnce(t *testing.T) {
	e := mustEntity(t, 0, 0, "red", 1, 1)

	if !e.Kill() {
		t.Error("first Kill() should report the transition")
	}
	if e.Alive() {
		t.Error("entity should be dead after Kill()")
	}
	if e.Kill() {
		t.Error("second Kill() should report no transition")
	}
	if e.Alive() {
		t.Error("dead entity must never revive")
	}
}

func TestEntityMoveBy(t *testing.T) {
	e := mustEntity(t, 5, 5, "red", 2, 3)

	e.MoveBy(core.Displacement{DX: -20, DY: 7})

	if e.X != -15 || e.Y != 12 {
		t.Errorf("position = (%d, %d), expected (-15, 12)", e.X, e.Y)
	}
	if e.Width() != 2 || e.Height() != 3 || e.Fill() != "red" {
		t.Error("MoveBy must not change size or color")
	}
	if e.Position() != "-15, 12" {
		t.Errorf("Position() = %q, expected \"-15, 12\"", e.Position())
	}
}
