package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func newEntry(t *testing.T, cs ...donburi.IComponentType) *donburi.Entry {
	t.Helper()
	w := donburi.NewWorld()
	return w.Entry(w.Create(append([]donburi.IComponentType{Identity}, cs...)...))
}

func TestAttachOverwritesSameKind(t *testing.T) {
	e := newEntry(t)
	Attach(e, Transform, TransformData{X: 1, Y: 2})
	Attach(e, Transform, TransformData{X: 3, Y: 4})

	tr, ok := Lookup(e, Transform)
	if !ok {
		t.Fatal("transform missing after attach")
	}
	if tr.X != 3 || tr.Y != 4 {
		t.Fatalf("transform = %+v, want last write", *tr)
	}
}

func TestLookupAbsentIsNotAnError(t *testing.T) {
	e := newEntry(t)
	if v, ok := Lookup(e, Velocity); ok || v != nil {
		t.Fatalf("Lookup on absent kind = %v, %v", v, ok)
	}
	if Has(e, Velocity) {
		t.Fatal("Has reported absent kind")
	}
	if _, ok := Lookup[TransformData](nil, Transform); ok {
		t.Fatal("Lookup on nil entry succeeded")
	}
}

func TestDetach(t *testing.T) {
	e := newEntry(t, Velocity)
	Detach(e, Velocity)
	if Has(e, Velocity) {
		t.Fatal("velocity still attached")
	}
	Detach(e, Velocity)
	Detach(e, Combo)
}

func TestTickRunsOnlyDeclaredHooks(t *testing.T) {
	e := newEntry(t, Transform, Velocity)
	Attach(e, Player, PlayerData{Stamina: 50, Cooldown: 1, IsAttacking: true, Health: 100})
	Attach(e, Combo, ComboData{Count: 2, Timer: 0.1})
	Attach(e, Velocity, VelocityData{X: 1})

	Tick(e, 0.5)

	p := Player.Get(e)
	if p.Stamina != 55 || p.Cooldown != 0.5 || p.IsAttacking {
		t.Errorf("player hook not applied: %+v", *p)
	}
	c := Combo.Get(e)
	if c.Count != 0 || c.Timer != 0 {
		t.Errorf("combo hook not applied: %+v", *c)
	}
	if v := Velocity.Get(e); v.X != 1 {
		t.Errorf("velocity touched by tick: %+v", *v)
	}
}

func TestScreenShakeCapsAndDecays(t *testing.T) {
	var s ScreenShakeData
	s.Add(0.6)
	s.Add(0.6)
	if s.Amount != 1 {
		t.Fatalf("shake = %v, want capped 1", s.Amount)
	}
	s.Decay()
	if s.Amount != 0.9 {
		t.Fatalf("shake = %v, want 0.9", s.Amount)
	}
	for i := 0; i < 200; i++ {
		s.Decay()
	}
	if s.Amount != 0 {
		t.Fatalf("shake never settled: %v", s.Amount)
	}
}
