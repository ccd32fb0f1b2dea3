package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// AppearanceData is how the renderer colors an entity
type AppearanceData struct {
	Color color.RGBA
}

var Appearance = donburi.NewComponentType[AppearanceData]()
