package components

import "github.com/yohamta/donburi"

// SeatData marks a lobby entry for one joined player
type SeatData struct {
	Name     string
	PeerID   string // empty for local players
	IsLocal  bool
	JoinedAt int // seat order
}

var Seat = donburi.NewComponentType[SeatData]()
