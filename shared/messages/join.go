package messages

// PlayerJoin is the PLAYER_JOIN payload
type PlayerJoin struct {
	PlayerID string `json:"playerId"`
}

// PlayerLeave is the PLAYER_LEAVE payload
type PlayerLeave struct {
	PlayerID string `json:"playerId"`
}
