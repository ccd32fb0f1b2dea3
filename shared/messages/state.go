package messages

// PlayerState is one combatant's public state inside a GAME_STATE snapshot
type PlayerState struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Health  float64 `json:"health"`
	Stamina float64 `json:"stamina"`
}

// GameState is the GAME_STATE payload
type GameState struct {
	Players []PlayerState `json:"players"`
}
