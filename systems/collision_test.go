package systems

import (
	"math"
	"testing"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/world"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

// newDuel returns a hot-seat match with the combatants placed at ax and bx
// on the same row.
func newDuel(t *testing.T, ax, bx float64) (*world.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := world.NewMatch(nil)
	cs := w.Combatants()
	if len(cs) != 2 {
		t.Fatalf("combatants = %d, want 2", len(cs))
	}
	a, b := cs[0], cs[1]
	components.Transform.Get(a).X = ax
	components.Transform.Get(b).X = bx
	w.SyncBody(a)
	w.SyncBody(b)
	return w, a, b
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCollisionImpulseAndSeparation(t *testing.T) {
	w, a, b := newDuel(t, 100, 120)
	components.Velocity.SetValue(a, components.VelocityData{X: 1})

	contacts := ResolveCollisions(w)
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}
	c := contacts[0]
	if c.First != a.Entity() || !c.Clash {
		t.Errorf("contact = %+v", c)
	}
	if !approxEqual(c.Impulse, 0.6) {
		t.Errorf("impulse = %v, want 0.6", c.Impulse)
	}

	va, vb := components.Velocity.Get(a), components.Velocity.Get(b)
	if !approxEqual(va.X, 0.4) || !approxEqual(vb.X, 0.6) {
		t.Errorf("velocities = %v, %v; want 0.4, 0.6", va.X, vb.X)
	}

	ta, tb := components.Transform.Get(a), components.Transform.Get(b)
	if !approxEqual(ta.X, 94) || !approxEqual(tb.X, 126) {
		t.Errorf("positions = %v, %v; want 94, 126", ta.X, tb.X)
	}
	if d := tb.X - ta.X; d < 2*cfg.Player.Radius-1e-9 {
		t.Errorf("separation = %v, want >= %v", d, 2*cfg.Player.Radius)
	}
}

func TestClashDamagesBothAndGrowsFirstCombo(t *testing.T) {
	w, a, b := newDuel(t, 100, 120)
	components.Velocity.SetValue(a, components.VelocityData{X: 1})

	ResolveCollisions(w)

	pa, pb := components.Player.Get(a), components.Player.Get(b)
	if pa.Health != 95 || pb.Health != 95 {
		t.Errorf("health = %v, %v; want 95, 95", pa.Health, pb.Health)
	}
	if ca, cb := components.Combo.Get(a).Count, components.Combo.Get(b).Count; ca != 1 || cb != 0 {
		t.Errorf("combos = %d, %d; want 1, 0", ca, cb)
	}
	if w.Match().Clashes != 1 {
		t.Errorf("clashes = %d, want 1", w.Match().Clashes)
	}

	sfx, _ := w.Audio().Drain()
	if len(sfx) != 1 || sfx[0].ID != cfg.SoundHit || sfx[0].Variation != cfg.Audio.HitVariation {
		t.Errorf("sfx = %+v, want one varied hit", sfx)
	}
}

func TestSecondClashQueuesComboCue(t *testing.T) {
	w, a, b := newDuel(t, 100, 120)

	for i := 0; i < 2; i++ {
		components.Transform.Get(a).X = 100
		components.Transform.Get(b).X = 120
		w.SyncBody(a)
		w.SyncBody(b)
		components.Velocity.SetValue(a, components.VelocityData{X: 1})
		components.Velocity.SetValue(b, components.VelocityData{})
		if n := len(ResolveCollisions(w)); n != 1 {
			t.Fatalf("round %d: contacts = %d, want 1", i, n)
		}
	}

	if ca, cb := components.Combo.Get(a).Count, components.Combo.Get(b).Count; ca != 2 || cb != 0 {
		t.Errorf("combos = %d, %d; want 2, 0", ca, cb)
	}

	sfx, _ := w.Audio().Drain()
	var combo []components.SoundCue
	for _, s := range sfx {
		if s.ID == cfg.SoundCombo {
			combo = append(combo, s)
		}
	}
	if len(combo) != 1 || combo[0].Pitch != 1 {
		t.Errorf("combo cues = %+v, want one at pitch 1", combo)
	}
	if got := w.Shake().Amount; !approxEqual(got, 0.6) {
		t.Errorf("shake = %v, want 0.6", got)
	}
}

func TestSeparatingPairIsUntouched(t *testing.T) {
	w, a, b := newDuel(t, 100, 120)
	components.Velocity.SetValue(a, components.VelocityData{X: -1})

	if n := len(ResolveCollisions(w)); n != 0 {
		t.Fatalf("contacts = %d, want 0", n)
	}
	if ta, tb := components.Transform.Get(a).X, components.Transform.Get(b).X; ta != 100 || tb != 120 {
		t.Errorf("positions = %v, %v; want unchanged", ta, tb)
	}
	if pa := components.Player.Get(a); pa.Health != cfg.Player.MaxHealth {
		t.Errorf("health = %v, want full", pa.Health)
	}
}

func TestBlockingContactDealsNoDamage(t *testing.T) {
	w, a, b := newDuel(t, 100, 120)
	components.Velocity.SetValue(a, components.VelocityData{X: 1})
	components.Player.Get(b).Blocking = true

	contacts := ResolveCollisions(w)
	if len(contacts) != 1 || contacts[0].Clash {
		t.Fatalf("contacts = %+v, want one without clash", contacts)
	}
	pa, pb := components.Player.Get(a), components.Player.Get(b)
	if pa.Health != cfg.Player.MaxHealth || pb.Health != cfg.Player.MaxHealth {
		t.Errorf("health = %v, %v; want full", pa.Health, pb.Health)
	}
	if components.Combo.Get(a).Count != 0 {
		t.Error("combo grew on a blocked contact")
	}
}

func TestDistantPairDoesNotCollide(t *testing.T) {
	w, a, _ := newDuel(t, 100, 300)
	components.Velocity.SetValue(a, components.VelocityData{X: 1})

	if n := len(ResolveCollisions(w)); n != 0 {
		t.Fatalf("contacts = %d, want 0", n)
	}
}

type fatalHelper interface {
	Helper()
	Fatalf(format string, args ...any)
}

func assertInsideArena(t fatalHelper, w *world.World) {
	t.Helper()
	r := cfg.Player.Radius
	for _, e := range w.Combatants() {
		tr := components.Transform.Get(e)
		if tr.X < r-1e-9 || tr.X > cfg.Arena.Width-r+1e-9 || tr.Y < r-1e-9 || tr.Y > cfg.Arena.Height-r+1e-9 {
			t.Fatalf("position (%v, %v) outside arena", tr.X, tr.Y)
		}
		col := components.Collider.Get(e)
		if !approxEqual(col.Body.X, tr.X-col.Radius) || !approxEqual(col.Body.Y, tr.Y-col.Radius) {
			t.Fatalf("body (%v, %v) not synced to (%v, %v)", col.Body.X, col.Body.Y, tr.X, tr.Y)
		}
	}
}

func TestClashAtWallStaysInsideArena(t *testing.T) {
	w, a, b := newDuel(t, 16, 22)
	components.Velocity.SetValue(b, components.VelocityData{X: -1})

	UpdatePhysics(w, 1.0/60)
	if contacts := ResolveCollisions(w); len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}

	assertInsideArena(t, w)
	if x := components.Transform.Get(a).X; !approxEqual(x, cfg.Player.Radius) {
		t.Errorf("a.x = %v, want pinned to %v", x, cfg.Player.Radius)
	}
}

func TestFramesKeepCombatantsInsideArena(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := world.NewMatch(nil)
		for i, e := range w.Combatants() {
			tr := components.Transform.Get(e)
			tr.X = rapid.Float64Range(cfg.Player.Radius, cfg.Arena.Width-cfg.Player.Radius).Draw(t, "x")
			tr.Y = rapid.Float64Range(cfg.Player.Radius, cfg.Arena.Height-cfg.Player.Radius).Draw(t, "y")
			components.Velocity.SetValue(e, components.VelocityData{
				X: rapid.Float64Range(-1, 1).Draw(t, "vx"),
				Y: rapid.Float64Range(-1, 1).Draw(t, "vy"),
			})
			components.Player.Get(e).Blocking = i == 0 && rapid.Bool().Draw(t, "blocking")
			w.SyncBody(e)
		}

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			UpdatePhysics(w, rapid.Float64Range(0, 0.1).Draw(t, "dt"))
			ResolveCollisions(w)
			assertInsideArena(t, w)
		}
	})
}
