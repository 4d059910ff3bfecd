//go:build ebiten

package input

import "github.com/hajimehoshi/ebiten/v2"

// Bindings maps each logical key to the physical keys that trigger it.
type Bindings map[Key][]ebiten.Key

// DefaultBindings returns the standard keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		Pause:   {ebiten.KeySpace, ebiten.KeyP},
		Restart: {ebiten.KeyR},
	}
}

// Poll returns a function reporting whether any physical key bound to a
// logical key is held.
func (b Bindings) Poll() func(Key) bool {
	return func(k Key) bool {
		for _, key := range b[k] {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
		return false
	}
}
