package components

import "github.com/yohamta/donburi"

// MatchData stores the outcome of a finished match (singleton component)
type MatchData struct {
	Over   bool
	Winner string // empty on a draw
	// Elapsed is simulated seconds since the match started
	Elapsed float64
	Clashes int
}

var Match = donburi.NewComponentType[MatchData]()
