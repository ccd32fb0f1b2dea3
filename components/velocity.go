package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// VelocityData holds a movement intent in [-1,1] per axis. Only the physics
// pass scales it by the configured max speed.
type VelocityData struct {
	X, Y float64
}

func (v VelocityData) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v VelocityData) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

var Velocity = donburi.NewComponentType[VelocityData]()
