package world

import (
	"strings"

	"github.com/automoto/shapefighter/archetypes"
	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/tags"
	"github.com/yohamta/donburi"
)

// NewMainMenu builds the title screen world
func NewMainMenu() *World {
	return New(ModeMainMenu, populateMainMenu)
}

// NewLobby builds an empty lobby; seats are added as players join
func NewLobby() *World {
	return New(ModeLobby, populateLobby)
}

// NewMatch builds a match world with exactly two combatants. roster lists
// the lobby seats in join order; an empty roster is a hot-seat match.
func NewMatch(roster []components.SeatData) *World {
	return New(ModeMatch, func(w *World) {
		populateMatch(w, roster)
	})
}

func populateMainMenu(w *World) {
	title := archetypes.Label.Spawn(w)
	components.Transform.SetValue(title, components.TransformData{X: cfg.Arena.Width / 2, Y: 100})
	components.Label.SetValue(title, components.LabelData{Text: cfg.Menu.Title, Title: true})
	components.Appearance.SetValue(title, components.AppearanceData{Color: cfg.UI.TextColor})

	for _, item := range cfg.Menu.Items {
		e := archetypes.MenuItem.Spawn(w)
		components.Transform.SetValue(e, components.TransformData{X: item.X, Y: item.Y})
		components.MenuItem.SetValue(e, components.MenuItemData{Label: item.Label, Identifier: item.Identifier})
		components.Appearance.SetValue(e, components.AppearanceData{Color: cfg.UI.TextColor})
	}
}

func populateLobby(w *World) {
	for _, l := range []struct {
		text string
		y    float64
	}{
		{"Waiting for players...", 100},
		{"Press Start when ready", 300},
	} {
		e := archetypes.Label.Spawn(w)
		components.Transform.SetValue(e, components.TransformData{X: cfg.Arena.Width / 2, Y: l.y})
		components.Label.SetValue(e, components.LabelData{Text: l.text})
		components.Appearance.SetValue(e, components.AppearanceData{Color: cfg.UI.TextColor})
	}
}

func populateMatch(w *World, roster []components.SeatData) {
	networked := false
	for _, s := range roster {
		if !s.IsLocal {
			networked = true
		}
	}

	for i, spawn := range cfg.Match.Spawns {
		netID := NetIDFor(spawn.Name)
		isLocal := spawn.IsLocal
		remote := false
		if networked && i < len(roster) {
			netID = roster[i].PeerID
			isLocal = roster[i].IsLocal
			remote = !roster[i].IsLocal
		}
		SpawnCombatant(w, spawn, netID, isLocal, remote)
	}
}

// NetIDFor derives the network id of a hot-seat combatant from its name
func NetIDFor(name string) string {
	return "player_" + strings.Replace(strings.ToLower(name), " ", "_", 1)
}

// SpawnCombatant creates a full combatant. Remote combatants are driven by
// snapshots instead of the local keyboard.
func SpawnCombatant(w *World, spawn cfg.SpawnConfig, netID string, isLocal, remote bool) *donburi.Entry {
	var extra []donburi.IComponentType
	if remote {
		extra = append(extra, tags.Remote)
	}
	e := archetypes.Combatant.Spawn(w, extra...)
	components.Transform.SetValue(e, components.TransformData{X: spawn.X, Y: spawn.Y})
	components.Player.SetValue(e, components.NewPlayer(spawn.Name, netID, isLocal))
	components.NetworkIdentity.SetValue(e, components.NetworkIdentityData{ID: netID})
	components.Appearance.SetValue(e, components.AppearanceData{Color: spawn.Color})
	w.AttachCollider(e, cfg.Player.Radius)
	return e
}
