package crawler

// Renderer draws shapes onto a surface in immediate mode. It holds no state.
type Renderer struct{}

// Render paints the shape's rectangle in its fill color.
func (Renderer) Render(s Shape, dst DrawingSurface) {
	r := s.Bounds()
	dst.SetFillColor(s.Fill())
	dst.FillRect(r.X, r.Y, r.W, r.H)
}

// Clear erases the drawing area of the given size.
func (Renderer) Clear(dst DrawingSurface, width, height int) {
	dst.ClearRect(0, 0, width, height)
}
