package systems

import (
	"testing"

	"github.com/automoto/shapefighter/components"
	"github.com/automoto/shapefighter/world"
)

func TestChargeUntilFirstClash(t *testing.T) {
	w := world.NewMatch(nil)
	a, b := w.Combatants()[0], w.Combatants()[1]
	const dt = 1.0 / 60

	var contacts []Contact
	frames := 0
	for ; frames < 600 && len(contacts) == 0; frames++ {
		UpdateInput(w, KeySet{"D": true})
		UpdatePhysics(w, dt)
		contacts = ResolveCollisions(w)
		w.Update(dt)
	}
	if len(contacts) == 0 {
		t.Fatalf("no contact after %d frames", frames)
	}

	pa, pb := components.Player.Get(a), components.Player.Get(b)
	if pa.Health != 95 || pb.Health != 95 {
		t.Errorf("health = %v, %v; want 95, 95", pa.Health, pb.Health)
	}
	if ca, cb := components.Combo.Get(a).Count, components.Combo.Get(b).Count; ca != 1 || cb != 0 {
		t.Errorf("combos = %d, %d; want 1, 0", ca, cb)
	}
	if components.Transform.Get(b).X <= components.Transform.Get(a).X {
		t.Error("combatants passed through each other")
	}
	if world.IsMatchOver(w) {
		t.Error("match over after one clash")
	}
}

func TestUpdateEffectsDecaysShake(t *testing.T) {
	w := world.NewMatch(nil)
	w.Shake().Add(0.5)

	UpdateEffects(w)

	if got := w.Shake().Amount; !approxEqual(got, 0.45) {
		t.Errorf("shake = %v, want 0.45", got)
	}
	x, y := ShakeOffset(w, func() float64 { return 1 }, 5)
	if !approxEqual(x, 0.45*5/2) || !approxEqual(y, 0.45*5/2) {
		t.Errorf("offset = (%v, %v)", x, y)
	}
}
