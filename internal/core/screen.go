package core

import (
	"strings"
)

// Screen is a single-buffer color raster in surface pixel space.
// Games paint it in immediate mode; frontends sample it into terminal cells.
type Screen struct {
	width  int
	height int
	fill   Color
	pixels [][]Color
}

// NewScreen creates a new cleared raster with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	s.pixels = make([][]Color, s.height)
	for y := range s.pixels {
		s.pixels[y] = make([]Color, s.width)
	}
}

// Width returns the surface width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full drawing area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (s *Screen) SetFillColor(c Color) {
	s.fill = c
}

// FillColor returns the current fill color.
func (s *Screen) FillColor() Color {
	return s.fill
}

// FillRect paints a rectangle with the current fill color.
// The parts outside the surface are clipped.
func (s *Screen) FillRect(x, y, w, h int) {
	s.paint(NewRect(x, y, w, h), s.fill)
}

// ClearRect erases a rectangle back to ColorNone.
func (s *Screen) ClearRect(x, y, w, h int) {
	s.paint(NewRect(x, y, w, h), ColorNone)
}

// Clear erases the entire surface.
func (s *Screen) Clear() {
	s.paint(s.Bounds(), ColorNone)
}

func (s *Screen) paint(r Rect, c Color) {
	clip := s.Bounds().Intersection(r)
	if clip.Empty() {
		return
	}
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := s.pixels[y]
		for x := clip.X; x < clip.Right(); x++ {
			row[x] = c
		}
	}
}

// At returns the color at the given pixel.
// Returns ColorNone for out-of-bounds coordinates.
func (s *Screen) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorNone
	}
	return s.pixels[y][x]
}

// Equal reports whether two screens hold identical pixels.
func (s *Screen) Equal(other *Screen) bool {
	if other == nil || s.width != other.width || s.height != other.height {
		return false
	}
	for y := range s.pixels {
		for x := range s.pixels[y] {
			if s.pixels[y][x] != other.pixels[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the raster.
func (s *Screen) Clone() *Screen {
	c := NewScreen(s.width, s.height)
	c.fill = s.fill
	for y := range s.pixels {
		copy(c.pixels[y], s.pixels[y])
	}
	return c
}

// String renders the raster as text, one rune per pixel:
// '#' for painted pixels and '.' for cleared ones. Intended for small
// debug surfaces and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if s.pixels[y][x] == ColorNone {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}
