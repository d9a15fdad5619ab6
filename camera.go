package raycaster

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active glide-to tweens for camera X and Z.
type glideAnim struct {
	tweenX *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneZ  bool
}

// Camera is the eye the scene is rendered from: a position in the floor plan
// and the projection-plane distance that converts field of view and canvas
// width into ray geometry.
type Camera struct {
	// X and Z are the camera's floor-plan position. The camera looks toward +Z.
	X, Z float64
	// Distance is the projection-plane distance, derived from the horizontal
	// field of view and the canvas width at scene construction.
	Distance float64

	glide *glideAnim
}

// newCamera derives the projection distance for the given canvas width and
// horizontal field of view in degrees.
func newCamera(width int, fovDegrees float64) *Camera {
	fov := fovDegrees * math.Pi / 180
	return &Camera{Distance: float64(width) / (2 * math.Tan(fov/2))}
}

// Ray returns the view ray for a screen column: the line from the camera's
// position through the projection-plane point at lateral offset screenX from
// the canvas center. screenX may be negative.
func (c *Camera) Ray(screenX float64) Line {
	return NewLine(c.X, c.Z, c.X+screenX, c.Z+c.Distance)
}

// GlideTo animates the camera to the given floor-plan position over duration
// seconds. A glide already in progress is replaced.
func (c *Camera) GlideTo(x, z float64, duration float32, easeFn ease.TweenFunc) {
	c.glide = &glideAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenZ: gween.New(float32(c.Z), float32(z), duration, easeFn),
	}
}

// Gliding reports whether a glide animation is in progress.
func (c *Camera) Gliding() bool {
	return c.glide != nil
}

// update advances the glide animation by dt seconds and reports whether the
// camera moved. Called from Scene.Update.
func (c *Camera) update(dt float32) bool {
	if c.glide == nil {
		return false
	}
	if !c.glide.doneX {
		val, done := c.glide.tweenX.Update(dt)
		c.X = float64(val)
		c.glide.doneX = done
	}
	if !c.glide.doneZ {
		val, done := c.glide.tweenZ.Update(dt)
		c.Z = float64(val)
		c.glide.doneZ = done
	}
	if c.glide.doneX && c.glide.doneZ {
		c.glide = nil
	}
	return true
}
