package components

import (
	"math"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

// ScreenShakeData is the accumulated shake amount in [0, cfg.ScreenShake.Max]
// (singleton component)
type ScreenShakeData struct {
	Amount float64
}

// Add accumulates shake, capped at the configured maximum
func (s *ScreenShakeData) Add(amount float64) {
	s.Amount = math.Min(s.Amount+amount, cfg.ScreenShake.Max)
}

// Decay advances the shake by one frame
func (s *ScreenShakeData) Decay() {
	if s.Amount <= 0 {
		s.Amount = 0
		return
	}
	s.Amount *= cfg.ScreenShake.Decay
	if s.Amount < 1e-3 {
		s.Amount = 0
	}
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
