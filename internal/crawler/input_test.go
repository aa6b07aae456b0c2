package crawler

import (
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

func newTestMapper(t *testing.T, state *GameState) *InputMapper {
	t.Helper()
	m, err := NewInputMapper(state, DefaultKeyTable(), DefaultStep)
	if err != nil {
		t.Fatalf("NewInputMapper() failed: %v", err)
	}
	return m
}

func TestHandleKeyDirections(t *testing.T) {
	tests := []struct {
		keys   []string
		dx, dy int
	}{
		{[]string{"w", "W", "up"}, 0, -10},
		{[]string{"s", "S", "down"}, 0, 10},
		{[]string{"a", "A", "left"}, -10, 0},
		{[]string{"d", "D", "right"}, 10, 0},
	}

	for _, tc := range tests {
		for _, key := range tc.keys {
			t.Run(key, func(t *testing.T) {
				state := newTestState(t)
				m := newTestMapper(t, state)
				player := state.Player

				d, ok := m.HandleKey(key)
				if !ok {
					t.Fatalf("HandleKey(%q) should be recognized", key)
				}
				if d != (core.Displacement{DX: tc.dx, DY: tc.dy}) {
					t.Errorf("displacement = %+v, expected {%d %d}", d, tc.dx, tc.dy)
				}
				if player.X != 10+tc.dx || player.Y != 10+tc.dy {
					t.Errorf("player at (%d, %d), expected (%d, %d)", player.X, player.Y, 10+tc.dx, 10+tc.dy)
				}
				if player.Width() != 16 || player.Height() != 16 || player.Fill() != "lightsteelblue" {
					t.Error("movement must not change size or color")
				}
			})
		}
	}
}

func TestHandleKeyUnknown(t *testing.T) {
	state := newTestState(t)
	m := newTestMapper(t, state)

	for _, key := range []string{"x", "enter", " ", "", "ctrl+w", "UP", "🙂"} {
		d, ok := m.HandleKey(key)
		if ok {
			t.Errorf("HandleKey(%q) should not be recognized", key)
		}
		if !d.IsZero() {
			t.Errorf("HandleKey(%q) displacement = %+v, expected zero", key, d)
		}
	}

	if state.Player.X != 10 || state.Player.Y != 10 {
		t.Errorf("unknown keys moved the player to (%d, %d)", state.Player.X, state.Player.Y)
	}
}

func TestHandleKeyImmediate(t *testing.T) {
	state := newTestState(t)
	m := newTestMapper(t, state)

	// Several presses between ticks all land, with no tick in between.
	for i := 0; i < 3; i++ {
		m.HandleKey("right")
	}
	if state.Player.X != 40 {
		t.Errorf("player.X = %d after three presses, expected 40", state.Player.X)
	}
}

func TestHandleKeyNoClamp(t *testing.T) {
	state := newTestState(t)
	m := newTestMapper(t, state)

	for i := 0; i < 5; i++ {
		m.HandleKey("a")
	}
	if state.Player.X != -40 {
		t.Errorf("player.X = %d, expected -40 (no clamping)", state.Player.X)
	}
}

func TestCustomTableAndStep(t *testing.T) {
	state := newTestState(t)
	table := KeyTable{"k": core.DirUp, "j": core.DirDown}
	m, err := NewInputMapper(state, table, 3)
	if err != nil {
		t.Fatalf("NewInputMapper() failed: %v", err)
	}

	m.HandleKey("k")
	if state.Player.Y != 7 {
		t.Errorf("player.Y = %d, expected 7", state.Player.Y)
	}
	if _, ok := m.HandleKey("w"); ok {
		t.Error("default bindings should not apply to a custom table")
	}
}

func TestNewInputMapperErrors(t *testing.T) {
	if _, err := NewInputMapper(nil, nil, 10); err == nil {
		t.Error("nil state should be rejected")
	}
	if _, err := NewInputMapper(newTestState(t), nil, 0); err == nil {
		t.Error("zero step should be rejected")
	}
}

func TestKeyTableKeys(t *testing.T) {
	keys := DefaultKeyTable().Keys(core.DirUp)
	expected := []string{"W", "up", "w"}
	if len(keys) != len(expected) {
		t.Fatalf("Keys(up) = %v, expected %v", keys, expected)
	}
	for i := range keys {
		if keys[i] != expected[i] {
			t.Errorf("Keys(up) = %v, expected %v", keys, expected)
		}
	}
}
