package messages

// Buttons is the held state of one player's bound actions
type Buttons struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Up     bool `json:"up"`
	Down   bool `json:"down"`
	Attack bool `json:"attack"`
	Block  bool `json:"block"`
}

// PlayerInput is the PLAYER_INPUT payload, sent every frame for the local player
type PlayerInput struct {
	PlayerID string  `json:"playerId"`
	Input    Buttons `json:"input"`
}
