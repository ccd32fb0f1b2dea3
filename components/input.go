package components

import (
	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

// IntentData stores the current and previous frame's pressed state for a
// combatant's bound actions. Written by the input mapper, read by the network
// layer for PLAYER_INPUT and by the sound cues for edge detection.
type IntentData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *IntentData) Held(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *IntentData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Moving reports whether any direction is held
func (i *IntentData) Moving() bool {
	return i.Current[cfg.ActionMoveLeft] || i.Current[cfg.ActionMoveRight] ||
		i.Current[cfg.ActionMoveUp] || i.Current[cfg.ActionMoveDown]
}

// StartedMoving reports the frame a direction was first held after standing still
func (i *IntentData) StartedMoving() bool {
	wasMoving := i.Previous[cfg.ActionMoveLeft] || i.Previous[cfg.ActionMoveRight] ||
		i.Previous[cfg.ActionMoveUp] || i.Previous[cfg.ActionMoveDown]
	return i.Moving() && !wasMoving
}

var Intent = donburi.NewComponentType[IntentData]()
