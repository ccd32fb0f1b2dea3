package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads ebiten key state by the key names used in bindings
type Keyboard struct {
	keys map[string]ebiten.Key
}

func NewKeyboard() *Keyboard {
	keys := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keys[k.String()] = k
	}
	return &Keyboard{keys: keys}
}

func (k *Keyboard) Pressed(name string) bool {
	key, ok := k.keys[name]
	return ok && ebiten.IsKeyPressed(key)
}

// anyJustPressed reports a fresh press of any of keys this frame
func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
