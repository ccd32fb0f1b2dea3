package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Remote    = donburi.NewTag().SetName("Remote")
	MenuEntry = donburi.NewTag().SetName("MenuEntry")
	LobbyText = donburi.NewTag().SetName("LobbyText")
)

// Resolv tags for the broad-phase space
const (
	ResolvCombatant = "combatant"
)
