package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/world"
	"pgregory.net/rapid"
)

func TestShakeDecaysToZero(t *testing.T) {
	w := world.NewMatch(nil)
	w.Shake().Add(cfg.ScreenShake.Max)
	for i := 0; i < 10000 && w.Shake().Amount > 0; i++ {
		UpdateEffects(w)
	}
	if w.Shake().Amount != 0 {
		t.Errorf("shake = %v after decay, want 0", w.Shake().Amount)
	}
	if dx, dy := ShakeOffset(w, func() float64 { return 0.9 }, 1); dx != 0 || dy != 0 {
		t.Errorf("offset = %v, %v with no shake", dx, dy)
	}
}

func TestShakeOffsetBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := world.NewMatch(nil)
		w.Shake().Add(rapid.Float64Range(0, 100).Draw(t, "amount"))
		intensity := rapid.Float64Range(0, 2).Draw(t, "intensity")
		r := rapid.Float64Range(0, 0.999).Draw(t, "rnd")

		dx, dy := ShakeOffset(w, func() float64 { return r }, intensity)
		limit := w.Shake().Amount*intensity/2 + 1e-9
		if math.Abs(dx) > limit || math.Abs(dy) > limit {
			t.Fatalf("offset %v, %v exceeds %v", dx, dy, limit)
		}
	})
}
