// Package raycaster is a minimal pseudo-3D raycasting renderer for
// [Ebitengine].
//
// A scene is a flat floor plan of colored line-segment walls viewed through a
// first-person camera. Each screen column casts one ray from the camera
// through a virtual projection plane; the nearest wall hit fills the column,
// and everything else is shaded as floor or ceiling. Brightness falls off
// exponentially with distance.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := raycaster.NewScene(raycaster.Config{
//		Width: 320, Height: 240, FOV: 90,
//		Floor:       raycaster.Color{R: 60, G: 60, B: 60},
//		Ceiling:     raycaster.Color{R: 20, G: 20, B: 40},
//		Attenuation: 50,
//		Speed:       raycaster.Vec2{X: 2, Z: 2},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.AddWall(-20, 30, 20, 30, raycaster.Color{R: 255, G: 80, B: 80})
//	raycaster.Run(scene, raycaster.RunConfig{Title: "Raycaster"})
//
// For full control, implement [ebiten.Game] yourself, render into a [Canvas],
// and blit it with [Canvas.DrawTo].
//
// # Coordinate system
//
// The floor plan uses (x, z) coordinates: x is the lateral axis, z is the
// forward/depth axis. The camera looks toward +z. Screen columns map to
// lateral offsets on the projection plane; screen rows map to floor/ceiling
// depth via the pinhole relation.
//
// # Animation
//
// [Camera.GlideTo] animates the camera position with easing curves (via
// [gween]), and [ScriptRunner] sequences movement commands, glides, and
// screenshots across frames for scripted walkthroughs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package raycaster
