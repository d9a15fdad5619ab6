package raycaster

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a discrete movement command produced by the input layer.
type Command uint8

const (
	CommandNone     Command = iota // no movement
	CommandForward                 // step along +Z
	CommandBackward                // step along -Z
	CommandLeft                    // step along -X
	CommandRight                   // step along +X
)

// Bindings maps keyboard keys to movement commands. Keys not present in the
// map are ignored.
type Bindings map[ebiten.Key]Command

// DefaultBindings returns the standard movement map: WASD and the arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		ebiten.KeyW:          CommandForward,
		ebiten.KeyS:          CommandBackward,
		ebiten.KeyA:          CommandLeft,
		ebiten.KeyD:          CommandRight,
		ebiten.KeyArrowUp:    CommandForward,
		ebiten.KeyArrowDown:  CommandBackward,
		ebiten.KeyArrowLeft:  CommandLeft,
		ebiten.KeyArrowRight: CommandRight,
	}
}

// pressedCommands returns one command per bound key that was pressed this
// tick. Each key press yields exactly one command, so each produces exactly
// one movement step and one re-render.
func pressedCommands(b Bindings) []Command {
	var cmds []Command
	for key, cmd := range b {
		if inpututil.IsKeyJustPressed(key) {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
