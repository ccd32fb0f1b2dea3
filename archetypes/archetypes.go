package archetypes

import (
	"github.com/automoto/shapefighter/components"
	"github.com/automoto/shapefighter/tags"
	"github.com/yohamta/donburi"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Transform,
		components.Velocity,
		components.Player,
		components.Collider,
		components.Combo,
		components.NetworkIdentity,
		components.Appearance,
		components.Intent,
	)
	RemotePlayer = newArchetype(
		tags.Remote,
		components.NetworkIdentity,
		components.Player,
		components.Transform,
	)
	MenuItem = newArchetype(
		tags.MenuEntry,
		components.Transform,
		components.MenuItem,
		components.Appearance,
	)
	Label = newArchetype(
		tags.LobbyText,
		components.Transform,
		components.Label,
		components.Appearance,
	)
	Seat = newArchetype(
		components.Transform,
		components.Seat,
		components.Appearance,
	)
)

// Creator is anything that can create an entity from a component list
type Creator interface {
	Create(cs ...donburi.IComponentType) *donburi.Entry
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(c Creator, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	return c.Create(append(all, cs...)...)
}
