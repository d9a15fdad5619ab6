package raycaster

import "testing"

func TestWallIntersectInside(t *testing.T) {
	w := NewWall(-10, 10, 10, 10, Color{R: 255})
	ray := NewLine(0, 0, 0, 1) // vertical ray along the z axis
	pt, ok := w.Intersect(ray)
	if !ok {
		t.Fatal("Intersect ok = false, want true")
	}
	if !pointsEqual(pt, Point{0, 10}, epsilon) {
		t.Errorf("Intersect = %+v, want {0 10}", pt)
	}
}

func TestWallBoundingRejection(t *testing.T) {
	// The ray meets the wall's infinite extension at x = 5, well outside the
	// segment from (0,0) to (1,0).
	w := NewWall(0, 0, 1, 0, Color{R: 255})
	ray := NewLine(5, -1, 5, 1)
	if _, ok := w.Intersect(ray); ok {
		t.Error("Intersect ok = true, want false for hit outside the segment")
	}
}

func TestWallEndpointAccepted(t *testing.T) {
	// A hit exactly on a segment endpoint is inside the bounding box.
	w := NewWall(0, 0, 4, 4, Color{R: 255})
	ray := NewLine(4, 0, 4, 1)
	pt, ok := w.Intersect(ray)
	if !ok {
		t.Fatal("Intersect ok = false, want true at segment endpoint")
	}
	if !pointsEqual(pt, Point{4, 4}, epsilon) {
		t.Errorf("Intersect = %+v, want {4 4}", pt)
	}
}

func TestWallParallelRay(t *testing.T) {
	w := NewWall(-10, 10, 10, 10, Color{R: 255})
	ray := NewLine(-10, 5, 10, 5) // parallel, offset in z
	if _, ok := w.Intersect(ray); ok {
		t.Error("Intersect ok = true, want false for parallel ray")
	}
}

func TestWallLine(t *testing.T) {
	w := NewWall(1, 2, 3, 4, Color{})
	l := w.Line()
	if l.X1 != 1 || l.Z1 != 2 || l.X2 != 3 || l.Z2 != 4 {
		t.Errorf("Line() endpoints = (%v,%v)-(%v,%v), want (1,2)-(3,4)", l.X1, l.Z1, l.X2, l.Z2)
	}
}

func TestBoundsContainsTolerance(t *testing.T) {
	b := newBounds(0, 0, 1, 1)
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Point{0.5, 0.5}, true},
		{"corner", Point{1, 1}, true},
		{"just outside within tolerance", Point{1 + 1e-10, 1}, true},
		{"outside x", Point{1.1, 0.5}, false},
		{"outside z", Point{0.5, -0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}
