package raycaster

// epsilon is the tolerance used for bounding-box acceptance. It guards
// against floating-point misses at segment endpoints.
const epsilon = 1e-9

// Color represents an RGB color with channels in [0, 255]. Channel values are
// plain float64s and are not clamped by the rendering core; out-of-range
// values are clamped at pixel-write time by the output surface.
type Color struct {
	R, G, B float64
}

// Scale returns the color with every channel multiplied by factor.
func (c Color) Scale(factor float64) Color {
	return Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}
}

// Vec2 is a per-axis value pair in floor-plan coordinates, used for movement
// speed: X is the lateral step size, Z the forward step size.
type Vec2 struct {
	X, Z float64
}

// Point is a position in the floor plan. X is the lateral axis, Z the
// forward/depth axis.
type Point struct {
	X, Z float64
}

// Bounds is an axis-aligned bounding box in floor-plan coordinates.
type Bounds struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// newBounds returns the bounding box of the segment (x1, z1)-(x2, z2).
func newBounds(x1, z1, x2, z2 float64) Bounds {
	b := Bounds{MinX: x1, MaxX: x2, MinZ: z1, MaxZ: z2}
	if x2 < x1 {
		b.MinX, b.MaxX = x2, x1
	}
	if z2 < z1 {
		b.MinZ, b.MaxZ = z2, z1
	}
	return b
}

// Contains reports whether p lies inside the box. Edges are inclusive, with
// an epsilon tolerance on every side.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX-epsilon && p.X <= b.MaxX+epsilon &&
		p.Z >= b.MinZ-epsilon && p.Z <= b.MaxZ+epsilon
}
