package systems

import (
	"math"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/tags"
	"github.com/automoto/shapefighter/world"
	"github.com/yohamta/donburi"
)

// Contact describes one resolved collision between two combatants.
// First is always the earlier entity in the world's insertion order.
type Contact struct {
	First, Second donburi.Entity
	NX, NY        float64
	Impulse       float64
	Overlap       float64
	// Clash is true when neither side was blocking and damage was dealt
	Clash bool
}

// ResolveCollisions checks every unordered pair of moving combatants and
// resolves the overlapping, approaching ones. The resolv space narrows the
// candidates; the exact test is the circle distance.
func ResolveCollisions(w *world.World) []Contact {
	var bodies []*donburi.Entry
	for _, e := range w.Entries() {
		if e.HasComponent(components.Transform) && e.HasComponent(components.Velocity) && e.HasComponent(components.Player) {
			bodies = append(bodies, e)
		}
	}

	var contacts []Contact
	for i := 0; i < len(bodies); i++ {
		near := neighbors(w, bodies[i])
		for j := i + 1; j < len(bodies); j++ {
			if !candidate(near, bodies[j]) {
				continue
			}
			if c, ok := resolvePair(w, bodies[i], bodies[j]); ok {
				contacts = append(contacts, c)
			}
		}
	}
	return contacts
}

// neighbors returns the entities sharing a broad-phase cell with e, or nil
// when e has no body and every pair must be tested.
func neighbors(w *world.World, e *donburi.Entry) map[donburi.Entity]bool {
	col, ok := components.Lookup(e, components.Collider)
	if !ok || col.Body == nil {
		return nil
	}
	near := make(map[donburi.Entity]bool)
	check := col.Body.Check(0, 0, tags.ResolvCombatant)
	if check == nil {
		return near
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvCombatant) {
		if other, ok := w.EntryOf(obj); ok {
			near[other.Entity()] = true
		}
	}
	return near
}

func candidate(near map[donburi.Entity]bool, e *donburi.Entry) bool {
	if near == nil {
		return true
	}
	if col, ok := components.Lookup(e, components.Collider); !ok || col.Body == nil {
		return true
	}
	return near[e.Entity()]
}

func resolvePair(w *world.World, a, b *donburi.Entry) (Contact, bool) {
	ta, tb := components.Transform.Get(a), components.Transform.Get(b)
	va, vb := components.Velocity.Get(a), components.Velocity.Get(b)
	pa, pb := components.Player.Get(a), components.Player.Get(b)

	dx := tb.X - ta.X
	dy := tb.Y - ta.Y
	dist := math.Hypot(dx, dy)
	minDist := radiusOf(a) + radiusOf(b)
	if dist >= minDist {
		return Contact{}, false
	}

	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx, ny = dx/dist, dy/dist
	}

	// Approaching bodies have a negative normal component; separating ones
	// are left alone, positions included.
	along := (vb.X-va.X)*nx + (vb.Y-va.Y)*ny
	if along > 0 {
		return Contact{}, false
	}

	j := -(1 + cfg.Physics.Restitution) * along / 2
	va.X -= j * nx
	va.Y -= j * ny
	vb.X += j * nx
	vb.Y += j * ny

	overlap := (minDist - dist) / 2
	ta.X -= overlap * nx
	ta.Y -= overlap * ny
	tb.X += overlap * nx
	tb.Y += overlap * ny
	contain(a, ta)
	contain(b, tb)
	w.SyncBody(a)
	w.SyncBody(b)

	c := Contact{
		First:   a.Entity(),
		Second:  b.Entity(),
		NX:      nx,
		NY:      ny,
		Impulse: j,
		Overlap: overlap * 2,
	}

	if !pa.Blocking && !pb.Blocking {
		c.Clash = true
		clash(w, a, b, pa, pb)
	}
	return c, true
}

// clash deals the flat clash damage to both sides. Only the first entity's
// combo grows and the second's resets; which side is first depends on pair
// order alone, since a contact has no attacker.
func clash(w *world.World, a, b *donburi.Entry, pa, pb *components.PlayerData) {
	pa.TakeDamage(cfg.Combat.ClashDamage)
	pb.TakeDamage(cfg.Combat.ClashDamage)
	w.Match().Clashes++

	audio := w.Audio()
	audio.QueueVaried(cfg.SoundHit, cfg.Audio.HitVariation, 1)

	ca, okA := components.Lookup(a, components.Combo)
	cb, okB := components.Lookup(b, components.Combo)
	if !okA || !okB {
		return
	}
	ca.Increment()
	cb.Reset()

	if ca.Count >= cfg.Combo.MinCueLength {
		audio.QueueVaried(cfg.SoundCombo, 0, cfg.ComboPitch(ca.Count))
	}
	w.Shake().Add(cfg.Combo.ShakePerHit * float64(ca.Count))
}
