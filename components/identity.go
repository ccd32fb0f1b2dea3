package components

import "github.com/yohamta/donburi"

// IdentityData is the world-assigned serial of an entity. Serials only grow;
// a removed entity's serial is never handed out again by the same world.
type IdentityData struct {
	Serial uint64
}

var Identity = donburi.NewComponentType[IdentityData]()
