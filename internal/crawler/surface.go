// Package crawler implements the hero-vs-ogre collision game: a player
// rectangle moved by directional keys and a stationary ogre that dies when the
// two bounding boxes overlap.
//
// The package is frontend-agnostic. It draws through DrawingSurface and
// reports through StatusSink; key identifiers arrive as plain strings.
package crawler

import "github.com/vovakirdan/tui-crawler/internal/core"

// DrawingSurface is a 2D raster target supporting fill and clear operations.
// core.Screen implements it.
type DrawingSurface interface {
	SetFillColor(c core.Color)
	FillRect(x, y, w, h int)
	ClearRect(x, y, w, h int)
	Width() int
	Height() int
}

// StatusSink is a write-only text display.
type StatusSink interface {
	SetText(text string)
}

// Shape is anything with a bounding box and a fill color.
type Shape interface {
	Bounds() core.Rect
	Fill() core.Color
}

// TextSink is an in-memory StatusSink that frontends read back for the HUD.
type TextSink struct {
	text   string
	writes int
}

// SetText replaces the current text.
func (s *TextSink) SetText(text string) {
	s.text = text
	s.writes++
}

// Text returns the last text written.
func (s *TextSink) Text() string {
	return s.text
}

// Writes returns how many times SetText has been called.
func (s *TextSink) Writes() int {
	return s.writes
}

var (
	_ DrawingSurface = (*core.Screen)(nil)
	_ StatusSink     = (*TextSink)(nil)
)
