package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderData is a fixed-radius circle. Body is the entity's bounding box in
// the world's broad-phase space; it is nil for entities outside the space.
type ColliderData struct {
	Radius float64
	Body   *resolv.Object
}

var Collider = donburi.NewComponentType[ColliderData]()
