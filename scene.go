package raycaster

import (
	"fmt"
	"math"
)

// Config is the in-memory configuration a Scene is constructed with.
type Config struct {
	// Width and Height are the canvas dimensions in pixels. Both must be
	// positive.
	Width, Height int
	// FOV is the horizontal field of view in degrees, in (0, 180).
	FOV float64
	// Floor and Ceiling are the base colors for the lower and upper half of
	// each column where no wall is visible.
	Floor, Ceiling Color
	// Attenuation is the distance at which brightness falls to 1/e of the
	// base color. Must be positive.
	Attenuation float64
	// Speed holds the per-axis step sizes for movement commands. Components
	// must be non-negative.
	Speed Vec2
}

// Scene owns the wall list, the camera, and the render parameters, and runs
// the per-column, per-row render loop. Walls and render parameters are fixed
// after construction apart from AddWall appends; only the camera mutates.
type Scene struct {
	walls  []Wall
	camera *Camera
	cfg    Config
}

// NewScene validates cfg and constructs a scene with an empty wall list and
// the camera at the floor-plan origin.
func NewScene(cfg Config) (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("raycaster: canvas size %dx%d, want positive dimensions", cfg.Width, cfg.Height)
	}
	if cfg.FOV <= 0 || cfg.FOV >= 180 {
		return nil, fmt.Errorf("raycaster: fov %v degrees, want a value in (0, 180)", cfg.FOV)
	}
	if cfg.Attenuation <= 0 {
		return nil, fmt.Errorf("raycaster: attenuation %v, want a positive distance", cfg.Attenuation)
	}
	if cfg.Speed.X < 0 || cfg.Speed.Z < 0 {
		return nil, fmt.Errorf("raycaster: speed (%v, %v), want non-negative components", cfg.Speed.X, cfg.Speed.Z)
	}
	return &Scene{
		camera: newCamera(cfg.Width, cfg.FOV),
		cfg:    cfg,
	}, nil
}

// Size returns the canvas dimensions the scene renders at.
func (s *Scene) Size() (width, height int) {
	return s.cfg.Width, s.cfg.Height
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// AddWall appends the wall segment (x1, z1)-(x2, z2) with the given color.
// Walls cannot be removed or mutated after insertion. Insertion order does
// not affect rendering except as the tie-break for equal-depth hits.
func (s *Scene) AddWall(x1, z1, x2, z2 float64, clr Color) {
	s.walls = append(s.walls, NewWall(x1, z1, x2, z2, clr))
}

// Walls returns the scene's wall list. The returned slice MUST NOT be mutated.
func (s *Scene) Walls() []Wall {
	return s.walls
}

// Render repaints the whole frame into dst and presents it once. For every
// column it casts a ray, finds the nearest wall in front of the camera, and
// resolves each row to a wall, floor, or ceiling color with exponential
// distance attenuation applied.
func (s *Scene) Render(dst Surface) {
	w, h := s.cfg.Width, s.cfg.Height
	for sx := 0; sx < w; sx++ {
		ray := s.camera.Ray(float64(sx - w/2))
		hit, minZ := s.nearestHit(ray)
		for sy := 0; sy < h; sy++ {
			clr, depth := s.shade(hit, minZ, float64(sy-h/2))
			dst.SetPixel(sx, sy, clr.Scale(math.Exp(-depth/s.cfg.Attenuation)))
		}
	}
	dst.Present()
}

// nearestHit scans all walls for the ray intersection with the smallest depth
// in front of the camera. The strict < keeps the first wall seen when several
// walls intersect at exactly the same depth. With no hit the returned depth
// is +Inf.
func (s *Scene) nearestHit(ray Line) (*Wall, float64) {
	minZ := math.Inf(1)
	var hit *Wall
	for i := range s.walls {
		pt, ok := s.walls[i].Intersect(ray)
		if !ok || pt.Z <= s.camera.Z {
			continue
		}
		if pt.Z < minZ {
			minZ = pt.Z
			hit = &s.walls[i]
		}
	}
	return hit, minZ
}

// shade resolves the color and attenuation depth for one row of a column.
// y is the row offset from the canvas center. ceilingZ is the depth at which
// the ray through this row crosses the floor/ceiling plane; when that plane
// is nearer than the wall hit (or there is no hit) the pixel shows floor or
// ceiling instead of the wall. At y == 0 the division yields +Inf, so the
// center row always prefers the wall.
func (s *Scene) shade(hit *Wall, minZ, y float64) (Color, float64) {
	ceilingZ := math.Abs(2 * float64(s.cfg.Height) / (s.camera.Distance * y))
	if hit == nil || ceilingZ < minZ {
		if y >= 0 {
			return s.cfg.Floor, ceilingZ
		}
		return s.cfg.Ceiling, ceilingZ
	}
	return hit.Color, minZ - s.camera.Z
}

// MoveForward steps the camera along +Z by the configured forward speed.
func (s *Scene) MoveForward() {
	s.camera.Z += s.cfg.Speed.Z
}

// MoveBackward steps the camera along -Z by the configured forward speed.
func (s *Scene) MoveBackward() {
	s.camera.Z -= s.cfg.Speed.Z
}

// MoveLeft steps the camera along -X by the configured lateral speed.
func (s *Scene) MoveLeft() {
	s.camera.X -= s.cfg.Speed.X
}

// MoveRight steps the camera along +X by the configured lateral speed.
func (s *Scene) MoveRight() {
	s.camera.X += s.cfg.Speed.X
}

// Apply executes one movement command and reports whether it moved the
// camera. Unknown commands are ignored, not errors. Movement does not itself
// trigger a render; the caller re-renders afterward.
func (s *Scene) Apply(cmd Command) bool {
	switch cmd {
	case CommandForward:
		s.MoveForward()
	case CommandBackward:
		s.MoveBackward()
	case CommandLeft:
		s.MoveLeft()
	case CommandRight:
		s.MoveRight()
	default:
		return false
	}
	return true
}

// Update advances camera animation by dt seconds and reports whether the
// camera moved and the frame needs a re-render.
func (s *Scene) Update(dt float32) bool {
	return s.camera.update(dt)
}
