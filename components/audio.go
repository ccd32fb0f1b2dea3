package components

import (
	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

// SoundCue is one queued effect. Pitch 1 is the base rate; Variation is the
// random spread applied around it.
type SoundCue struct {
	ID        cfg.SoundID
	Pitch     float64
	Variation float64
}

// MusicCue asks the frontend to start or stop the background loop
type MusicCue int

const (
	MusicUnchanged MusicCue = iota
	MusicStart
	MusicStop
)

// AudioData is the queue of sound requests raised by the simulation during
// a frame (singleton component). The scene drains it into the sound manager.
type AudioData struct {
	PendingSFX []SoundCue
	Music      MusicCue
}

func (a *AudioData) Queue(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, SoundCue{ID: id, Pitch: 1})
}

func (a *AudioData) QueueVaried(id cfg.SoundID, variation, pitch float64) {
	a.PendingSFX = append(a.PendingSFX, SoundCue{ID: id, Pitch: pitch, Variation: variation})
}

// Drain returns and clears the queued cues and the pending music request
func (a *AudioData) Drain() ([]SoundCue, MusicCue) {
	sfx, music := a.PendingSFX, a.Music
	a.PendingSFX = nil
	a.Music = MusicUnchanged
	return sfx, music
}

var Audio = donburi.NewComponentType[AudioData]()
