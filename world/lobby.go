package world

import (
	"github.com/automoto/shapefighter/archetypes"
	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

const (
	seatStartY  = 200
	seatSpacing = 50
)

// AddPlayer seats a player in the lobby. A player already seated under the
// same name and peer id is not seated twice.
func AddPlayer(w *World, seat components.SeatData) *donburi.Entry {
	seats := Seats(w)
	for _, e := range seatEntries(w) {
		s := components.Seat.Get(e)
		if s.Name == seat.Name && s.PeerID == seat.PeerID {
			return e
		}
	}
	seat.JoinedAt = len(seats)

	e := archetypes.Seat.Spawn(w)
	components.Transform.SetValue(e, components.TransformData{
		X: cfg.Arena.Width / 2,
		Y: seatStartY + float64(len(seats))*seatSpacing,
	})
	components.Seat.SetValue(e, seat)
	components.Appearance.SetValue(e, components.AppearanceData{Color: cfg.UI.TextColor})
	return e
}

// RemovePlayer unseats the player with the given peer id, or the given name
// when peerID is empty. It reports whether a seat was removed.
func RemovePlayer(w *World, name, peerID string) bool {
	for _, e := range seatEntries(w) {
		s := components.Seat.Get(e)
		if (peerID != "" && s.PeerID == peerID) || (peerID == "" && s.Name == name) {
			w.Remove(e)
			relayoutSeats(w)
			return true
		}
	}
	return false
}

// Seats returns the seated players in join order
func Seats(w *World) []components.SeatData {
	var out []components.SeatData
	for _, e := range seatEntries(w) {
		out = append(out, *components.Seat.Get(e))
	}
	return out
}

// IsReadyToStart reports whether enough players are seated for a match
func IsReadyToStart(w *World) bool {
	return len(seatEntries(w)) >= cfg.Match.MinPlayer
}

func seatEntries(w *World) []*donburi.Entry {
	var out []*donburi.Entry
	for _, e := range w.Entries() {
		if e.HasComponent(components.Seat) {
			out = append(out, e)
		}
	}
	return out
}

func relayoutSeats(w *World) {
	for i, e := range seatEntries(w) {
		components.Seat.Get(e).JoinedAt = i
		components.Transform.Get(e).Y = seatStartY + float64(i)*seatSpacing
	}
}
