package config

// ActionID represents a logical combat action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionBlock
	ActionCount // Must be last - used for array sizing
)

// Binding maps every action to a key name. Key names follow ebiten's
// Key.String() spelling so the frontend can resolve them without a lookup table.
type Binding [ActionCount]string

// InputConfig holds the per-player key tables, keyed by display name
type InputConfig struct {
	Bindings map[string]Binding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[string]Binding{
			"Player 1": {
				ActionMoveLeft:  "A",
				ActionMoveRight: "D",
				ActionMoveUp:    "W",
				ActionMoveDown:  "S",
				ActionAttack:    "Space",
				ActionBlock:     "F",
			},
			"Player 2": {
				ActionMoveLeft:  "ArrowLeft",
				ActionMoveRight: "ArrowRight",
				ActionMoveUp:    "ArrowUp",
				ActionMoveDown:  "ArrowDown",
				ActionAttack:    "Enter",
				ActionBlock:     "Slash",
			},
		},
	}
}

// BindingFor returns the key table for a player display name
func BindingFor(name string) (Binding, bool) {
	b, ok := Input.Bindings[name]
	return b, ok
}

// Keys lists every distinct key name referenced by a binding
func (b Binding) Keys() []string {
	keys := make([]string, 0, ActionCount)
	for _, k := range b {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
