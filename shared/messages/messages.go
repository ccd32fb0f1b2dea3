// Package messages defines the JSON wire protocol shared by the game client
// and the relay server. Every frame is a text message {"type":N,"data":...}.
package messages

import (
	"encoding/json"
	"fmt"
)

// Type identifies the payload carried by an Envelope
type Type int

const (
	TypeGameState Type = iota
	TypePlayerInput
	TypePlayerJoin
	TypePlayerLeave
)

func (t Type) String() string {
	switch t {
	case TypeGameState:
		return "GAME_STATE"
	case TypePlayerInput:
		return "PLAYER_INPUT"
	case TypePlayerJoin:
		return "PLAYER_JOIN"
	case TypePlayerLeave:
		return "PLAYER_LEAVE"
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// Known reports whether t is one of the protocol's message types
func (t Type) Known() bool {
	return t >= TypeGameState && t <= TypePlayerLeave
}

// Envelope is one protocol message with its payload still encoded
type Envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Encode wraps payload in an envelope and marshals it for a text frame
func Encode(t Type, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", t, err)
	}
	out, err := json.Marshal(Envelope{Type: t, Data: data})
	if err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", t, err)
	}
	return out, nil
}

// Decode parses a text frame into an envelope without touching the payload
func Decode(frame []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// Payload decodes the envelope's data into T
func Payload[T any](env Envelope) (T, error) {
	var v T
	if len(env.Data) == 0 {
		return v, fmt.Errorf("%s: empty payload", env.Type)
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("%s payload: %w", env.Type, err)
	}
	return v, nil
}
