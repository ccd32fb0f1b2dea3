// Package assets holds the ebiten side of resource playback.
package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSink plays rendered PCM through an ebiten audio context. It satisfies
// sound.Sink.
type AudioSink struct {
	context *audio.Context
	playing []*audio.Player // one-shot effects still sounding
	loop    *audio.Player
}

// NewAudioSink reuses the process audio context or creates one at
// cfg.Audio.SampleRate. ebiten allows only one context per process.
func NewAudioSink() *AudioSink {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	return &AudioSink{context: ctx}
}

// PlayPCM starts a one-shot player for pcm
func (s *AudioSink) PlayPCM(pcm []byte, volume float64) error {
	s.prune()
	if len(s.playing) >= cfg.Audio.MaxVoices {
		return fmt.Errorf("all %d voices busy", cfg.Audio.MaxVoices)
	}
	player := s.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	s.playing = append(s.playing, player)
	return nil
}

// StartLoop replaces the current loop with pcm repeated forever
func (s *AudioSink) StartLoop(pcm []byte, volume float64) error {
	s.StopLoop()
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := s.context.NewPlayer(loop)
	if err != nil {
		return fmt.Errorf("failed to create music player: %w", err)
	}
	player.SetVolume(volume)
	player.Play()
	s.loop = player
	return nil
}

func (s *AudioSink) StopLoop() {
	if s.loop == nil {
		return
	}
	s.loop.Pause()
	_ = s.loop.Close()
	s.loop = nil
}

func (s *AudioSink) SetLoopVolume(volume float64) {
	if s.loop != nil {
		s.loop.SetVolume(volume)
	}
}

// prune closes finished one-shot players
func (s *AudioSink) prune() {
	kept := s.playing[:0]
	for _, p := range s.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(kept); i < len(s.playing); i++ {
		s.playing[i] = nil
	}
	s.playing = kept
}
