package systems

import (
	"math"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/world"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every entity carrying Transform and Velocity. This
// is the only place velocity intent is scaled into pixels per second.
func UpdatePhysics(w *world.World, dt float64) {
	for _, e := range w.Entries() {
		integrate(e, dt)
		w.SyncBody(e)
	}
}

func integrate(e *donburi.Entry, dt float64) {
	tr, ok := components.Lookup(e, components.Transform)
	if !ok {
		return
	}
	vel, ok := components.Lookup(e, components.Velocity)
	if !ok {
		return
	}

	tr.X += vel.X * cfg.Physics.MaxSpeed * dt
	tr.Y += vel.Y * cfg.Physics.MaxSpeed * dt

	decay := math.Pow(cfg.Physics.Friction, dt)
	vel.X *= decay
	vel.Y *= decay

	if math.Abs(vel.X) < cfg.Physics.SnapEpsilon {
		vel.X = 0
	}
	if math.Abs(vel.Y) < cfg.Physics.SnapEpsilon {
		vel.Y = 0
	}

	contain(e, tr)

	if p, ok := components.Lookup(e, components.Player); ok && p.Blocking {
		vel.X *= cfg.Physics.BlockingDrag
		vel.Y *= cfg.Physics.BlockingDrag
	}
}

// contain clamps tr so the body stays inside the arena walls
func contain(e *donburi.Entry, tr *components.TransformData) {
	r := radiusOf(e)
	tr.X = clamp(tr.X, r, cfg.Arena.Width-r)
	tr.Y = clamp(tr.Y, r, cfg.Arena.Height-r)
}

func radiusOf(e *donburi.Entry) float64 {
	if col, ok := components.Lookup(e, components.Collider); ok && col.Radius > 0 {
		return col.Radius
	}
	return cfg.Player.Radius
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
