package sound

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/gopxl/beep"
)

type played struct {
	bytes  int
	volume float64
}

type fakeSink struct {
	played     []played
	loopVolume float64
	looping    bool
	err        error
}

func (f *fakeSink) PlayPCM(pcm []byte, volume float64) error {
	if f.err != nil {
		return f.err
	}
	f.played = append(f.played, played{len(pcm), volume})
	return nil
}

func (f *fakeSink) StartLoop(pcm []byte, volume float64) error {
	if f.err != nil {
		return f.err
	}
	f.looping = true
	f.loopVolume = volume
	return nil
}

func (f *fakeSink) StopLoop() {
	f.looping = false
}

func (f *fakeSink) SetLoopVolume(volume float64) {
	f.loopVolume = volume
}

func newTestManager() (*Manager, *fakeSink) {
	sink := &fakeSink{}
	m := NewManager(sink)
	m.rnd = func() float64 { return 0.5 }
	return m, sink
}

func TestPlaybackRate(t *testing.T) {
	tests := []struct {
		pitch, variation, rnd, want float64
	}{
		{1, 0.1, 0.5, 1},
		{1, 0.1, 0, 0.9},
		{1, 0.1, 1, 1.1},
		{3, 0.5, 0, 1.5},
		{5, 0, 0.5, 4},
		{0.2, 0, 0.5, 0.5},
		{3.9, 1, 1, 4},
	}
	for _, tt := range tests {
		if got := PlaybackRate(tt.pitch, tt.variation, tt.rnd); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PlaybackRate(%v, %v, %v) = %v, want %v", tt.pitch, tt.variation, tt.rnd, got, tt.want)
		}
	}
}

func TestOscillatorStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []cfg.Waveform{cfg.WaveSine, cfg.WaveSquare, cfg.WaveSaw, cfg.WaveNoise} {
		osc := newOscillator(440, 10*time.Millisecond, wave, rate)
		samples := make([][2]float64, 1000)
		n, ok := osc.Stream(samples)
		if !ok || n != rate.N(10*time.Millisecond) {
			t.Fatalf("wave %d: streamed %d, ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if v := samples[i][0]; v < -1 || v > 1 {
				t.Fatalf("wave %d: sample %d = %v", wave, i, v)
			}
		}
		if n, ok := osc.Stream(samples); n != 0 || ok {
			t.Errorf("wave %d: drained oscillator streamed %d, ok=%v", wave, n, ok)
		}
	}
}

func TestRenderLength(t *testing.T) {
	tone := cfg.Sound.Tones[cfg.SoundMove]
	s, ok := Effect(cfg.SoundMove, 1)
	if !ok {
		t.Fatal("move effect missing")
	}
	pcm := Render(s)

	samples := beep.SampleRate(cfg.Audio.SampleRate).N(time.Duration(tone.Millis) * time.Millisecond)
	if len(pcm) != samples*4 {
		t.Errorf("pcm = %d bytes, want %d", len(pcm), samples*4)
	}

	fast, _ := Effect(cfg.SoundMove, 2)
	if n := len(Render(fast)); n >= len(pcm) {
		t.Errorf("pitched up pcm = %d bytes, want shorter than %d", n, len(pcm))
	}
	if _, ok := Effect(cfg.SoundNone, 1); ok {
		t.Error("effect for SoundNone")
	}
}

func TestMuteSilencesEverything(t *testing.T) {
	m, sink := newTestManager()
	m.StartMusic()
	m.ToggleMute()

	m.Play(cfg.SoundHit)
	m.PlayCombo(3)

	if len(sink.played) != 0 {
		t.Errorf("played %d sounds while muted", len(sink.played))
	}
	if sink.loopVolume != 0 {
		t.Errorf("music volume = %v while muted", sink.loopVolume)
	}

	m.ToggleMute()
	if sink.loopVolume != cfg.Audio.MusicScale {
		t.Errorf("music volume = %v after unmute", sink.loopVolume)
	}
}

func TestVolumeIsClampedAndMusicScaled(t *testing.T) {
	m, sink := newTestManager()

	m.SetVolume(1.7)
	if m.Volume() != 1 {
		t.Errorf("volume = %v, want 1", m.Volume())
	}
	m.SetVolume(-1)
	if m.Volume() != 0 {
		t.Errorf("volume = %v, want 0", m.Volume())
	}

	m.SetVolume(0.5)
	m.Play(cfg.SoundBlock)
	if len(sink.played) != 1 || sink.played[0].volume != 0.5 {
		t.Errorf("played = %+v", sink.played)
	}
	if sink.loopVolume != 0.25 {
		t.Errorf("music volume = %v, want 0.25", sink.loopVolume)
	}
}

func TestComboNeedsTwoHits(t *testing.T) {
	m, sink := newTestManager()

	m.PlayCombo(1)
	if len(sink.played) != 0 {
		t.Fatal("combo cue for a single hit")
	}
	m.PlayCombo(4)
	if len(sink.played) != 1 {
		t.Fatalf("played %d, want 1", len(sink.played))
	}
}

func TestApplyDrainsWorldCues(t *testing.T) {
	m, sink := newTestManager()
	cues := []components.SoundCue{
		{ID: cfg.SoundHit, Pitch: 1, Variation: 0.1},
		{ID: cfg.SoundCombo, Pitch: 1.2},
	}

	m.Apply(cues, components.MusicStart)
	if len(sink.played) != 2 || !sink.looping || !m.MusicPlaying() {
		t.Fatalf("played = %d, looping = %v", len(sink.played), sink.looping)
	}

	m.Apply(nil, components.MusicStop)
	if sink.looping || m.MusicPlaying() {
		t.Error("music still playing")
	}
}

func TestSinkErrorsAreContained(t *testing.T) {
	m, sink := newTestManager()
	sink.err = errors.New("device lost")

	m.Play(cfg.SoundAttack)
	m.StartMusic()

	if m.MusicPlaying() {
		t.Error("music reported playing after failed start")
	}
}
