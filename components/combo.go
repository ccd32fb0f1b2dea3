package components

import (
	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

// ComboData counts uncontested hits landed within the combo window
type ComboData struct {
	Count int
	Timer float64 // seconds left in the window
}

// Increment extends the chain and refreshes the window
func (c *ComboData) Increment() {
	c.Count++
	c.Timer = cfg.Combo.Timeout
}

func (c *ComboData) Reset() {
	c.Count = 0
	c.Timer = 0
}

func (c *ComboData) Tick(dt float64) {
	if c.Timer <= 0 {
		return
	}
	c.Timer -= dt
	if c.Timer <= 0 {
		c.Reset()
	}
}

var Combo = donburi.NewComponentType[ComboData]()
