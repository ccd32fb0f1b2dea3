package components

import "github.com/yohamta/donburi"

// TransformData is an arena-local position, origin top-left
type TransformData struct {
	X, Y     float64
	Rotation float64
}

var Transform = donburi.NewComponentType[TransformData]()
