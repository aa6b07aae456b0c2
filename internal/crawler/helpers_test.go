package crawler

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

func mustEntity(t *testing.T, x, y int, color core.Color, w, h int) *Entity {
	t.Helper()
	e, err := NewEntity(x, y, color, w, h)
	if err != nil {
		t.Fatalf("NewEntity() failed: %v", err)
	}
	return e
}

// newTestState builds the default hero and ogre.
func newTestState(t *testing.T) *GameState {
	t.Helper()
	state, err := NewGameState(
		mustEntity(t, 10, 10, "lightsteelblue", 16, 16),
		mustEntity(t, 200, 50, "#bada55", 32, 48),
	)
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	return state
}

// recordingSurface logs every call it receives.
type recordingSurface struct {
	w, h  int
	calls []string
}

func (r *recordingSurface) SetFillColor(c core.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %s", c))
}

func (r *recordingSurface) FillRect(x, y, w, h int) {
	r.calls = append(r.calls, fmt.Sprintf("rect %d %d %d %d", x, y, w, h))
}

func (r *recordingSurface) ClearRect(x, y, w, h int) {
	r.calls = append(r.calls, fmt.Sprintf("clear %d %d %d %d", x, y, w, h))
}

func (r *recordingSurface) Width() int  { return r.w }
func (r *recordingSurface) Height() int { return r.h }
