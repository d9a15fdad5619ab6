package raycaster

// Line is an infinite 2D line through two points in the floor plan, stored as
// the slope m and intercept c of z = m*x + c. A line with x1 == x2 has no
// finite slope and is flagged vertical instead; m and c are not meaningful
// for vertical lines.
type Line struct {
	X1, Z1, X2, Z2 float64

	m, c     float64
	vertical bool
}

// NewLine constructs the line through (x1, z1) and (x2, z2).
func NewLine(x1, z1, x2, z2 float64) Line {
	l := Line{X1: x1, Z1: z1, X2: x2, Z2: z2}
	if x1 == x2 {
		l.vertical = true
		return l
	}
	l.m = (z1 - z2) / (x1 - x2)
	l.c = (z2*x1 - z1*x2) / (x1 - x2)
	return l
}

// Vertical reports whether the line is parallel to the z axis.
func (l Line) Vertical() bool {
	return l.vertical
}

// At returns the depth z of the line at lateral position x.
// Only meaningful for non-vertical lines.
func (l Line) At(x float64) float64 {
	return l.m*x + l.c
}

// Intersect returns the unique intersection point of l and other, or false
// when no unique point exists. Parallel lines never intersect under this
// model: equal slopes, and any pair of vertical lines (coincident or not),
// both report false.
func (l Line) Intersect(other Line) (Point, bool) {
	switch {
	case l.vertical && other.vertical:
		return Point{}, false
	case l.vertical:
		return Point{X: l.X1, Z: other.At(l.X1)}, true
	case other.vertical:
		return Point{X: other.X1, Z: l.At(other.X1)}, true
	case l.m == other.m:
		return Point{}, false
	}
	return Point{
		X: (other.c - l.c) / (l.m - other.m),
		Z: (l.m*other.c - other.m*l.c) / (l.m - other.m),
	}, true
}
