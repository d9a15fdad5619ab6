package raycaster

// Wall is a bounded wall segment in the floor plan: the infinite line through
// its endpoints, the bounding box that limits it to the segment, and the
// color it renders with.
type Wall struct {
	line   Line
	bounds Bounds

	// Color is the wall's base color before distance attenuation.
	Color Color
}

// NewWall constructs the wall segment from (x1, z1) to (x2, z2).
func NewWall(x1, z1, x2, z2 float64, clr Color) Wall {
	return Wall{
		line:   NewLine(x1, z1, x2, z2),
		bounds: newBounds(x1, z1, x2, z2),
		Color:  clr,
	}
}

// Line returns the infinite line the wall lies on.
func (w Wall) Line() Line {
	return w.line
}

// Intersect computes the ray's intersection with the wall's line and accepts
// it only when the point lies within the wall's bounding box.
func (w Wall) Intersect(ray Line) (Point, bool) {
	pt, ok := w.line.Intersect(ray)
	if !ok || !w.bounds.Contains(pt) {
		return Point{}, false
	}
	return pt, true
}
