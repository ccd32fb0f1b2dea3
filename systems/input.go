package systems

import (
	"math"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/tags"
	"github.com/automoto/shapefighter/world"
)

// KeyState reports whether a key, named as in config bindings, is held
type KeyState interface {
	Pressed(key string) bool
}

// KeySet is a KeyState over a fixed set of held keys
type KeySet map[string]bool

func (k KeySet) Pressed(key string) bool {
	return k[key]
}

// UpdateInput maps held keys onto every bound combatant's velocity intent and
// combat flags. Must run BEFORE UpdatePhysics in the frame order.
func UpdateInput(w *world.World, keys KeyState) {
	audio := w.Audio()
	for _, e := range w.Entries() {
		if e.HasComponent(tags.Remote) {
			continue
		}
		player, ok := components.Lookup(e, components.Player)
		if !ok {
			continue
		}
		vel, ok := components.Lookup(e, components.Velocity)
		if !ok {
			continue
		}
		binding, ok := cfg.BindingFor(player.Name)
		if !ok {
			continue
		}

		var held [cfg.ActionCount]bool
		for action, key := range binding {
			if key != "" && keys.Pressed(key) {
				held[action] = true
			}
		}

		intent, hasIntent := components.Lookup(e, components.Intent)
		if hasIntent {
			intent.Previous = intent.Current
			intent.Current = held
		}

		*vel = intentVelocity(held)

		wasBlocking := player.Blocking
		player.Blocking = held[cfg.ActionBlock]
		if player.Blocking && !wasBlocking {
			audio.Queue(cfg.SoundBlock)
		}

		if held[cfg.ActionAttack] && !player.Blocking {
			if player.Attack() {
				audio.Queue(cfg.SoundAttack)
			}
		}

		if player.IsLocal && hasIntent && intent.StartedMoving() {
			audio.Queue(cfg.SoundMove)
		}
	}
}

// intentVelocity turns held direction keys into a unit-or-zero intent.
// Diagonals are normalized so they move no faster than a single axis.
func intentVelocity(held [cfg.ActionCount]bool) components.VelocityData {
	var v components.VelocityData
	if held[cfg.ActionMoveLeft] {
		v.X--
	}
	if held[cfg.ActionMoveRight] {
		v.X++
	}
	if held[cfg.ActionMoveUp] {
		v.Y--
	}
	if held[cfg.ActionMoveDown] {
		v.Y++
	}
	if v.X != 0 && v.Y != 0 {
		l := math.Hypot(v.X, v.Y)
		v.X /= l
		v.Y /= l
	}
	return v
}
