package sound

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
)

// Sink plays rendered 16-bit stereo PCM at cfg.Audio.SampleRate
type Sink interface {
	PlayPCM(pcm []byte, volume float64) error
	StartLoop(pcm []byte, volume float64) error
	StopLoop()
	SetLoopVolume(volume float64)
}

// Manager turns sound requests into sink playback. Volume is global in
// [0,1]; music plays at cfg.Audio.MusicScale of it. While muted nothing new
// starts and the music loop is silenced.
type Manager struct {
	sink         Sink
	volume       float64
	muted        bool
	musicPlaying bool
	rnd          func() float64

	effects map[cfg.SoundID][]byte
	music   []byte
}

func NewManager(sink Sink) *Manager {
	return &Manager{
		sink:    sink,
		volume:  cfg.Audio.DefaultVolume,
		rnd:     rand.Float64,
		effects: make(map[cfg.SoundID][]byte),
	}
}

// PlaybackRate applies a random spread of ±pitch*variation around pitch and
// clamps the result to the playable range. rnd yields values in [0,1).
func PlaybackRate(pitch, variation, rnd float64) float64 {
	lo, hi := cfg.Audio.MinPlaybackRate, cfg.Audio.MaxPlaybackRate
	spread := math.Min(pitch*variation, hi-lo)
	return math.Max(lo, math.Min(hi, pitch+(rnd*2-1)*spread))
}

func (m *Manager) Play(id cfg.SoundID) {
	m.PlayWithVariation(id, 0, 1)
}

// PlayWithVariation plays id at a randomized rate around pitch
func (m *Manager) PlayWithVariation(id cfg.SoundID, variation, pitch float64) {
	if m.muted {
		return
	}
	rate := PlaybackRate(pitch, variation, m.rnd())
	pcm, ok := m.render(id, rate)
	if !ok {
		log.Printf("[audio] sound effect %q not found", id)
		return
	}
	if err := m.sink.PlayPCM(pcm, m.volume); err != nil {
		log.Printf("[audio] play %s: %v", id, err)
	}
}

// PlayCombo plays the combo cue, rising in pitch with the chain length.
// Chains shorter than two hits are silent.
func (m *Manager) PlayCombo(count int) {
	if count < cfg.Combo.MinCueLength {
		return
	}
	m.PlayWithVariation(cfg.SoundCombo, 0, cfg.ComboPitch(count))
}

func (m *Manager) render(id cfg.SoundID, rate float64) ([]byte, bool) {
	if rate == 1 {
		if pcm, ok := m.effects[id]; ok {
			return pcm, true
		}
	}
	s, ok := Effect(id, rate)
	if !ok {
		return nil, false
	}
	pcm := Render(s)
	if rate == 1 {
		m.effects[id] = pcm
	}
	return pcm, true
}

func (m *Manager) StartMusic() {
	if m.muted || m.musicPlaying {
		return
	}
	if m.music == nil {
		m.music = Render(Music())
	}
	if err := m.sink.StartLoop(m.music, m.musicVolume()); err != nil {
		log.Printf("[audio] start music: %v", err)
		return
	}
	m.musicPlaying = true
}

func (m *Manager) StopMusic() {
	if !m.musicPlaying {
		return
	}
	m.sink.StopLoop()
	m.musicPlaying = false
}

func (m *Manager) MusicPlaying() bool {
	return m.musicPlaying
}

// SetVolume clamps v to [0,1] and applies it to effects and music
func (m *Manager) SetVolume(v float64) {
	m.volume = math.Max(0, math.Min(1, v))
	m.sink.SetLoopVolume(m.musicVolume())
}

func (m *Manager) Volume() float64 {
	return m.volume
}

func (m *Manager) Muted() bool {
	return m.muted
}

func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	m.sink.SetLoopVolume(m.musicVolume())
}

func (m *Manager) ToggleMute() {
	m.SetMuted(!m.muted)
}

func (m *Manager) musicVolume() float64 {
	if m.muted {
		return 0
	}
	return m.volume * cfg.Audio.MusicScale
}

// Apply plays a frame's queued cues and music request
func (m *Manager) Apply(cues []components.SoundCue, music components.MusicCue) {
	for _, c := range cues {
		m.PlayWithVariation(c.ID, c.Variation, c.Pitch)
	}
	switch music {
	case components.MusicStart:
		m.StartMusic()
	case components.MusicStop:
		m.StopMusic()
	}
}

// Close stops the music loop
func (m *Manager) Close() {
	m.StopMusic()
}
