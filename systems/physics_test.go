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

func newBody(w *world.World, x, y, vx, vy float64) *donburi.Entry {
	e := w.Create(components.Transform, components.Velocity)
	components.Transform.SetValue(e, components.TransformData{X: x, Y: y})
	components.Velocity.SetValue(e, components.VelocityData{X: vx, Y: vy})
	return e
}

func TestFrictionIsFrameRateIndependent(t *testing.T) {
	w := world.New(world.ModeMatch, nil)
	coarse := newBody(w, 200, 200, 0.5, 0)
	fine := newBody(w, 200, 200, 0.5, 0)

	integrate(coarse, 1)
	for i := 0; i < 60; i++ {
		integrate(fine, 1.0/60)
	}

	vc := components.Velocity.Get(coarse).X
	vf := components.Velocity.Get(fine).X
	if math.Abs(vc-0.45) > 1e-9 {
		t.Errorf("coarse velocity = %v, want 0.45", vc)
	}
	if math.Abs(vc-vf) > 1e-9 {
		t.Errorf("coarse %v and fine %v velocities differ", vc, vf)
	}
}

func TestIntegrateSnapsTinyVelocity(t *testing.T) {
	w := world.New(world.ModeMatch, nil)
	e := newBody(w, 200, 200, 0.005, -0.5)

	integrate(e, 0)

	v := components.Velocity.Get(e)
	if v.X != 0 {
		t.Errorf("vx = %v, want snapped to 0", v.X)
	}
	if v.Y != -0.5 {
		t.Errorf("vy = %v, want -0.5", v.Y)
	}
}

func TestBlockingHalvesVelocity(t *testing.T) {
	w := world.New(world.ModeMatch, nil)
	e := newBody(w, 200, 200, 1, 0)
	e.AddComponent(components.Player)
	p := components.NewPlayer("Player 1", "p1", true)
	p.Blocking = true
	components.Player.SetValue(e, p)

	integrate(e, 0)

	if v := components.Velocity.Get(e).X; v != 0.5 {
		t.Errorf("vx = %v, want 0.5", v)
	}
}

func TestIntegrateKeepsBodyInsideArena(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := world.New(world.ModeMatch, nil)
		e := newBody(w,
			rapid.Float64Range(0, cfg.Arena.Width).Draw(t, "x"),
			rapid.Float64Range(0, cfg.Arena.Height).Draw(t, "y"),
			rapid.Float64Range(-1, 1).Draw(t, "vx"),
			rapid.Float64Range(-1, 1).Draw(t, "vy"),
		)
		steps := rapid.IntRange(1, 120).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			integrate(e, rapid.Float64Range(0, 0.1).Draw(t, "dt"))
		}

		tr := components.Transform.Get(e)
		r := cfg.Player.Radius
		if tr.X < r || tr.X > cfg.Arena.Width-r || tr.Y < r || tr.Y > cfg.Arena.Height-r {
			t.Fatalf("position (%v, %v) outside arena", tr.X, tr.Y)
		}
	})
}

func TestUpdatePhysicsMovesBody(t *testing.T) {
	w := world.NewMatch(nil)
	p1 := w.Combatants()[0]
	components.Velocity.SetValue(p1, components.VelocityData{X: 1})

	UpdatePhysics(w, 0.1)

	tr := components.Transform.Get(p1)
	if math.Abs(tr.X-120) > 1e-9 {
		t.Errorf("x = %v, want 120", tr.X)
	}
	col := components.Collider.Get(p1)
	if math.Abs(col.Body.X-(tr.X-col.Radius)) > 1e-9 {
		t.Errorf("body x = %v, not synced to %v", col.Body.X, tr.X-col.Radius)
	}
}
