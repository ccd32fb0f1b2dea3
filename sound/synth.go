// Package sound synthesizes the game's effects and music and plays them
// through a Sink.
package sound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// resampleQuality is passed to beep.ResampleRatio for pitched playback
const resampleQuality = 4

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     cfg.Waveform
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave cfg.Waveform, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case cfg.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case cfg.WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case cfg.WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; beep's Volume effect works in powers
// of Base, so zero maps to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func sampleRate() beep.SampleRate {
	return beep.SampleRate(cfg.Audio.SampleRate)
}

func toneStreamer(t cfg.ToneConfig, rate beep.SampleRate) beep.Streamer {
	d := time.Duration(t.Millis) * time.Millisecond
	osc := newOscillator(t.Freq, d, t.Wave, rate)
	shaped := newEnvelope(osc, d,
		time.Duration(t.AttackMs)*time.Millisecond,
		time.Duration(t.ReleaseMs)*time.Millisecond,
		rate)
	return newVolume(shaped, t.Gain)
}

// Effect returns the streamer for one sound effect played at the given rate.
// A rate of 1 is the base pitch; 2 is an octave up at half the length. The
// second result is false for an unknown id.
func Effect(id cfg.SoundID, playbackRate float64) (beep.Streamer, bool) {
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, false
	}
	s := toneStreamer(tone, sampleRate())
	if playbackRate == 1 {
		return s, true
	}
	return beep.ResampleRatio(resampleQuality, playbackRate, s), true
}

// Music returns one pass of the background bass line
func Music() beep.Streamer {
	rate := sampleRate()
	step := time.Duration(cfg.Sound.MusicStep) * time.Millisecond
	notes := make([]beep.Streamer, 0, len(cfg.Sound.MusicBeat))
	for _, f := range cfg.Sound.MusicBeat {
		osc := newOscillator(f, step, cfg.WaveSaw, rate)
		notes = append(notes, newVolume(newEnvelope(osc, step, 5*time.Millisecond, step/2, rate), 0.5))
	}
	return beep.Seq(notes...)
}

// Render drains s into signed 16-bit little-endian stereo PCM
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
