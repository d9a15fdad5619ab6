package raycaster

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// WindowScale is the number of window pixels per canvas pixel.
	// Values below 1 are treated as 1.
	WindowScale int
	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Bindings maps keys to movement commands. Nil means DefaultBindings().
	Bindings Bindings
	// Script optionally drives the scene with a scripted walkthrough.
	Script *ScriptRunner
	// ScreenshotDir overrides the canvas screenshot directory when non-empty.
	ScreenshotDir string
}

// game adapts a Scene and Canvas to the ebiten.Game interface.
type game struct {
	scene    *Scene
	canvas   *Canvas
	bindings Bindings
	script   *ScriptRunner
	showFPS  bool
	rendered bool
}

// Update handles input events and camera animation. Each movement event is
// followed synchronously by a full re-render; renders are never coalesced
// across events.
func (g *game) Update() error {
	if !g.rendered {
		g.scene.Render(g.canvas)
		g.rendered = true
	}
	for _, cmd := range pressedCommands(g.bindings) {
		if g.scene.Apply(cmd) {
			g.scene.Render(g.canvas)
		}
	}
	if g.script != nil && g.script.step(g.scene, g.canvas) {
		g.scene.Render(g.canvas)
	}
	if g.scene.Update(float32(1.0 / float64(ebiten.TPS()))) {
		g.scene.Render(g.canvas)
	}
	return nil
}

// Draw blits the most recently rendered frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.DrawTo(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *game) Layout(_, _ int) (int, int) {
	return g.scene.Size()
}

// Run opens a window for the scene and blocks running the game loop until
// the window is closed or the loop fails.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := scene.Size()
	canvas := NewCanvas(w, h)
	if cfg.ScreenshotDir != "" {
		canvas.ScreenshotDir = cfg.ScreenshotDir
	}

	scale := cfg.WindowScale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(cfg.Title)

	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}

	return ebiten.RunGame(&game{
		scene:    scene,
		canvas:   canvas,
		bindings: bindings,
		script:   cfg.Script,
		showFPS:  cfg.ShowFPS,
	})
}
