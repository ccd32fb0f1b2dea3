package systems

import "github.com/automoto/shapefighter/world"

// UpdateEffects decays the world's screen shake by one frame
func UpdateEffects(w *world.World) {
	w.Shake().Decay()
}

// ShakeOffset returns the camera offset for the current shake. rnd yields
// values in [0,1); the offset stays within ±Amount*Intensity/2 on each axis.
func ShakeOffset(w *world.World, rnd func() float64, intensity float64) (float64, float64) {
	amount := w.Shake().Amount
	if amount <= 0 {
		return 0, 0
	}
	return (rnd() - 0.5) * amount * intensity, (rnd() - 0.5) * amount * intensity
}
