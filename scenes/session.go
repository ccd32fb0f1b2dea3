package scenes

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/game"
	"github.com/automoto/shapefighter/network"
	"github.com/automoto/shapefighter/sound"
	"github.com/automoto/shapefighter/systems"
	"github.com/automoto/shapefighter/systems/render"
	"github.com/google/uuid"
)

const connectTimeout = 5 * time.Second

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is the state every scene shares: the mode controller, audio,
// the renderer, saved settings and, when networked, the relay client.
type Session struct {
	Controller *game.Controller
	Sound      *sound.Manager
	Renderer   *render.Renderer
	Settings   systems.SavedSettings

	networked  bool
	keys       *Keyboard
	client     *network.Client
	attempted  bool
	tuning     *cfg.Watcher
	tuningPath string
	quit       bool
}

// NewSession builds the controller for a hot-seat or networked game
func NewSession(settings systems.SavedSettings, networked bool, sink sound.Sink) *Session {
	s := &Session{
		Sound:     sound.NewManager(sink),
		Renderer:  render.NewRenderer(),
		Settings:  settings,
		networked: networked,
		keys:      NewKeyboard(),
	}
	s.Sound.SetVolume(settings.Volume)
	s.Sound.SetMuted(settings.Muted)
	s.reset()
	return s
}

// reset drops the relay connection and starts over at the main menu.
// The relay announces peers only on connect, so every networked lobby
// needs a fresh connection.
func (s *Session) reset() {
	if s.Controller != nil {
		s.Controller.Stop()
		s.flushAudio()
	}
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("[client] close: %v", err)
		}
		s.client = nil
	}
	s.attempted = false

	opts := game.Options{Name: s.Settings.Name}
	if s.networked {
		id := uuid.NewString()
		s.client = network.NewClient(s.Settings.Address, id)
		opts.Link = s.client
		opts.LocalID = id
	}
	s.Controller = game.NewController(s.keys, opts)
}

// ReturnToMenu leaves the current lobby or match
func (s *Session) ReturnToMenu() {
	if s.networked {
		s.reset()
		return
	}
	if err := s.Controller.ReturnToMenu(); err != nil {
		log.Printf("[game] %v", err)
	}
}

// Connect dials the relay in the background, once per lobby visit
func (s *Session) Connect() {
	if s.client == nil || s.attempted {
		return
	}
	s.attempted = true
	client := s.client
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		_ = client.Connect(ctx)
	}()
}

// ConnectionStatus describes the relay link for status lines; empty when
// hot-seat or connected
func (s *Session) ConnectionStatus() string {
	if s.client == nil {
		return ""
	}
	switch s.client.State() {
	case network.StateConnected:
		return ""
	case network.StateConnecting:
		return fmt.Sprintf("Connecting to %s...", s.Settings.Address)
	case network.StateDisconnected:
		if err := s.client.LastError(); err != nil {
			return "Connection lost: " + err.Error()
		}
		return "Disconnected"
	}
	return s.client.State().String()
}

func (s *Session) Networked() bool {
	return s.networked
}

// WatchTuning reloads path whenever it changes on disk
func (s *Session) WatchTuning(path string) error {
	w, err := cfg.NewWatcher(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	s.tuning = w
	s.tuningPath = path
	return nil
}

// Frame runs the per-frame chores shared by every scene
func (s *Session) Frame() {
	s.reloadTuning()
	s.flushAudio()
}

func (s *Session) reloadTuning() {
	if s.tuning == nil {
		return
	}
	for _, path := range s.tuning.Drain() {
		if filepath.Base(path) != filepath.Base(s.tuningPath) {
			continue
		}
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("[config] reload failed: %v", err)
			continue
		}
		log.Printf("[config] reloaded %s", path)
	}
	select {
	case err := <-s.tuning.Errors:
		log.Printf("[config] watcher: %v", err)
	default:
	}
}

func (s *Session) flushAudio() {
	cues, music := s.Controller.World().Audio().Drain()
	s.Sound.Apply(cues, music)
}

// SaveSettings stores the current audio settings along with address and
// name. A changed address or name takes effect on the next connection.
func (s *Session) SaveSettings(address, name string) {
	if address != "" {
		s.Settings.Address = address
	}
	if name != "" {
		s.Settings.Name = name
	}
	s.Settings.Volume = s.Sound.Volume()
	s.Settings.Muted = s.Sound.Muted()
	if err := systems.SaveSettings(s.Settings); err != nil {
		log.Printf("Warning: settings not saved: %v", err)
	}
	s.reset()
}

// Quit asks the game loop to terminate
func (s *Session) Quit() {
	s.quit = true
}

func (s *Session) Quitting() bool {
	return s.quit
}

// Close releases audio, the relay connection and the tuning watcher
func (s *Session) Close() {
	s.Controller.Stop()
	s.flushAudio()
	s.Sound.Close()
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.tuning != nil {
		_ = s.tuning.Close()
	}
}
