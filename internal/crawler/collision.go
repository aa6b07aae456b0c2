package crawler

// DetectHit reports whether the bounding boxes of a and b overlap with
// non-zero area. Rectangles that only touch along an edge do not hit.
func DetectHit(a, b Shape) bool {
	return a.Bounds().Intersects(b.Bounds())
}
