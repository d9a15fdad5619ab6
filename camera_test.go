package raycaster

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestProjectionDistance(t *testing.T) {
	tests := []struct {
		name  string
		width int
		fov   float64
		want  float64
	}{
		{"90 degrees", 320, 90, 160},
		{"60 degrees", 320, 60, 160 * math.Sqrt(3)},
		{"narrow canvas", 100, 90, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera(tt.width, tt.fov)
			if !approxEqual(cam.Distance, tt.want, 1e-9) {
				t.Errorf("Distance = %v, want %v", cam.Distance, tt.want)
			}
		})
	}
}

func TestCameraRay(t *testing.T) {
	cam := &Camera{X: 3, Z: 4, Distance: 100}
	ray := cam.Ray(10)
	if ray.X1 != 3 || ray.Z1 != 4 {
		t.Errorf("ray origin = (%v, %v), want camera position (3, 4)", ray.X1, ray.Z1)
	}
	if ray.X2 != 13 || ray.Z2 != 104 {
		t.Errorf("ray target = (%v, %v), want (13, 104)", ray.X2, ray.Z2)
	}
}

func TestCameraRayCenterColumnVertical(t *testing.T) {
	cam := &Camera{X: 7, Z: -2, Distance: 160}
	if !cam.Ray(0).Vertical() {
		t.Error("center-column ray should be vertical")
	}
}

func TestCameraRayTracksPosition(t *testing.T) {
	cam := &Camera{Distance: 160}
	before := cam.Ray(5)
	cam.X += 10
	cam.Z += 20
	after := cam.Ray(5)
	if before.X1 == after.X1 || before.Z1 == after.Z1 {
		t.Error("ray origin should follow the camera position")
	}
}

func TestGlideTo(t *testing.T) {
	cam := &Camera{}
	cam.GlideTo(10, 20, 1, ease.Linear)
	if !cam.Gliding() {
		t.Fatal("Gliding() = false immediately after GlideTo")
	}

	if !cam.update(0.5) {
		t.Fatal("update during glide should report movement")
	}
	if !approxEqual(cam.X, 5, 1e-3) || !approxEqual(cam.Z, 10, 1e-3) {
		t.Errorf("halfway position = (%v, %v), want (5, 10)", cam.X, cam.Z)
	}

	cam.update(0.6)
	if !approxEqual(cam.X, 10, 1e-3) || !approxEqual(cam.Z, 20, 1e-3) {
		t.Errorf("final position = (%v, %v), want (10, 20)", cam.X, cam.Z)
	}
	if cam.Gliding() {
		t.Error("Gliding() = true after glide completed")
	}
	if cam.update(0.1) {
		t.Error("update after glide completed should report no movement")
	}
}

func TestUpdateWithoutGlide(t *testing.T) {
	cam := &Camera{X: 1, Z: 2}
	if cam.update(0.5) {
		t.Error("update with no glide should report no movement")
	}
	if cam.X != 1 || cam.Z != 2 {
		t.Errorf("position = (%v, %v), want unchanged (1, 2)", cam.X, cam.Z)
	}
}
