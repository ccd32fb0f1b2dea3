package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// NetworkIdentityData correlates local and remote views of one combatant
type NetworkIdentityData struct {
	ID         string
	LastUpdate time.Time
}

var NetworkIdentity = donburi.NewComponentType[NetworkIdentityData]()
