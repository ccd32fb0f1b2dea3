package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundBlock
	SoundMove
	SoundAttack
	SoundGameOver
	SoundCombo
)

var soundNames = map[SoundID]string{
	SoundHit:      "hit",
	SoundBlock:    "block",
	SoundMove:     "move",
	SoundAttack:   "attack",
	SoundGameOver: "gameover",
	SoundCombo:    "combo",
}

func (s SoundID) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "none"
}

// Waveform selects the oscillator shape used to synthesize a sound
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneConfig describes one synthesized effect
type ToneConfig struct {
	Freq      float64 // Hz
	Wave      Waveform
	Millis    int
	AttackMs  int
	ReleaseMs int
	Gain      float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultVolume   float64 // 0.0 - 1.0
	MusicScale      float64 // music plays at MusicScale * volume
	HitVariation    float64 // random pitch spread for clash hits
	MinPlaybackRate float64
	MaxPlaybackRate float64
	MaxVoices       int // concurrent one-shot effects
}

// SoundConfig maps sound IDs to synthesis parameters
type SoundConfig struct {
	Tones     map[SoundID]ToneConfig
	MusicBeat []float64 // note frequencies of the looping background bass line
	MusicStep int       // millis per note
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultVolume:   1.0,
		MusicScale:      0.5,
		HitVariation:    0.1,
		MinPlaybackRate: 0.5,
		MaxPlaybackRate: 4.0,
		MaxVoices:       16,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundHit:      {Freq: 140, Wave: WaveNoise, Millis: 90, AttackMs: 2, ReleaseMs: 60, Gain: 0.6},
			SoundBlock:    {Freq: 220, Wave: WaveSquare, Millis: 80, AttackMs: 2, ReleaseMs: 50, Gain: 0.4},
			SoundMove:     {Freq: 320, Wave: WaveSine, Millis: 40, AttackMs: 5, ReleaseMs: 30, Gain: 0.2},
			SoundAttack:   {Freq: 520, Wave: WaveSaw, Millis: 70, AttackMs: 3, ReleaseMs: 50, Gain: 0.35},
			SoundGameOver: {Freq: 110, Wave: WaveSaw, Millis: 900, AttackMs: 20, ReleaseMs: 600, Gain: 0.5},
			SoundCombo:    {Freq: 660, Wave: WaveSine, Millis: 150, AttackMs: 5, ReleaseMs: 100, Gain: 0.45},
		},
		MusicBeat: []float64{55, 55, 82.41, 73.42, 55, 55, 65.41, 61.74},
		MusicStep: 250,
	}
}

// ComboPitch is the playback rate of the combo cue for a chain of count hits
func ComboPitch(count int) float64 {
	return 1 + float64(count-Combo.MinCueLength)*Combo.PitchStep
}
