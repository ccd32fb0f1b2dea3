// Package game drives the per-frame simulation order and the transitions
// between the menu, lobby, match and game-over states.
package game

import (
	"fmt"
	"log"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/shared/messages"
	"github.com/automoto/shapefighter/systems"
	"github.com/automoto/shapefighter/world"
)

type State int

const (
	StateMainMenu State = iota
	StateLobby
	StateMatch
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateLobby:
		return "Lobby"
	case StateMatch:
		return "Match"
	case StateGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// TransitionError is returned when a transition is requested from a state
// that does not allow it
type TransitionError struct {
	From, To State
	Reason   string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot go from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("cannot go from %s to %s", e.From, e.To)
}

// Options configures a controller. A nil Link makes every match hot-seat.
type Options struct {
	Link    systems.Link
	LocalID string
	Name    string
}

// Controller owns the active world and steps it once per frame
type Controller struct {
	state   State
	world   *world.World
	keys    systems.KeyState
	link    systems.Link
	localID string
	name    string
	net     *systems.NetSync
	stopped bool
	// lateLogged is set once the first post-match message is discarded
	lateLogged bool
}

func NewController(keys systems.KeyState, opts Options) *Controller {
	name := opts.Name
	if name == "" {
		name = cfg.SettingsMenu.DefaultName
	}
	return &Controller{
		state:   StateMainMenu,
		world:   world.NewMainMenu(),
		keys:    keys,
		link:    opts.Link,
		localID: opts.LocalID,
		name:    name,
	}
}

func (c *Controller) State() State {
	return c.state
}

// World is the active world; it is replaced on every transition
func (c *Controller) World() *world.World {
	return c.world
}

// Networked reports whether lobbies and matches go through the link
func (c *Controller) Networked() bool {
	return c.link != nil
}

func (c *Controller) LocalID() string {
	return c.localID
}

// Winner returns the winning combatant's name once the match is over, or
// false on a draw or before the end
func (c *Controller) Winner() (string, bool) {
	if c.state != StateGameOver {
		return "", false
	}
	m := c.world.Match()
	return m.Winner, m.Winner != ""
}

// EnterLobby discards the current world and opens an empty lobby. Hot-seat
// lobbies seat both local players at once; networked lobbies are seated by
// PLAYER_JOIN messages, the local one included.
func (c *Controller) EnterLobby() error {
	if c.state != StateMainMenu && c.state != StateGameOver {
		return &TransitionError{From: c.state, To: StateLobby}
	}
	c.world = world.NewLobby()
	c.state = StateLobby
	c.net = nil

	if !c.Networked() {
		for _, spawn := range cfg.Match.Spawns {
			world.AddPlayer(c.world, components.SeatData{Name: spawn.Name, IsLocal: true})
		}
	}
	return nil
}

// StartMatch replaces the lobby with a match built from its roster
func (c *Controller) StartMatch() error {
	if c.state != StateLobby {
		return &TransitionError{From: c.state, To: StateMatch}
	}
	if !world.IsReadyToStart(c.world) {
		return &TransitionError{From: c.state, To: StateMatch, Reason: "not enough players"}
	}

	seats := world.Seats(c.world)
	if len(seats) > len(cfg.Match.Spawns) {
		seats = seats[:len(cfg.Match.Spawns)]
	}
	var roster []components.SeatData
	if c.Networked() {
		roster = seats
		c.net = systems.NewNetSync(c.link, c.localID)
	}

	c.world = world.NewMatch(roster)
	c.world.Audio().Music = components.MusicStart
	c.state = StateMatch
	log.Printf("[game] match started with %d players", len(seats))
	return nil
}

// ReturnToMenu discards the current world and shows the main menu
func (c *Controller) ReturnToMenu() error {
	if c.state == StateMainMenu {
		return &TransitionError{From: c.state, To: StateMainMenu}
	}
	c.world = world.NewMainMenu()
	if c.state == StateMatch {
		c.world.Audio().Music = components.MusicStop
	}
	c.state = StateMainMenu
	c.net = nil
	return nil
}

// SelectMenuItem hit-tests the main menu and returns the chosen item's
// identifier
func (c *Controller) SelectMenuItem(x, y float64) (string, bool) {
	if c.state != StateMainMenu {
		return "", false
	}
	return world.SelectedMenuItem(c.world, x, y)
}

// Stop halts stepping and asks the frontend to stop the music
func (c *Controller) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.world.Audio().Music = components.MusicStop
}

func (c *Controller) Stopped() bool {
	return c.stopped
}

// Step advances the active world by dt seconds
func (c *Controller) Step(dt float64) {
	if c.stopped {
		return
	}
	switch c.state {
	case StateLobby:
		c.stepLobby()
	case StateMatch:
		c.stepMatch(dt)
	case StateGameOver:
		c.discardInbox()
	}
}

// discardInbox keeps the link's inbox empty while the peer may still be
// finishing its own match
func (c *Controller) discardInbox() {
	if !c.Networked() {
		return
	}
	if n := len(c.link.Drain()); n > 0 && !c.lateLogged {
		c.lateLogged = true
		log.Printf("[game] match over, ignoring %d late messages and any that follow", n)
	}
}

func (c *Controller) stepLobby() {
	if !c.Networked() {
		return
	}
	for _, env := range c.link.Drain() {
		switch env.Type {
		case messages.TypePlayerJoin:
			join, err := messages.Payload[messages.PlayerJoin](env)
			if err != nil {
				log.Printf("[game] %v", err)
				continue
			}
			c.seatPeer(join.PlayerID)
		case messages.TypePlayerLeave:
			leave, err := messages.Payload[messages.PlayerLeave](env)
			if err != nil {
				log.Printf("[game] %v", err)
				continue
			}
			world.RemovePlayer(c.world, "", leave.PlayerID)
		}
	}
}

func (c *Controller) seatPeer(id string) {
	local := id == c.localID
	name := id
	if local {
		name = c.name
	}
	world.AddPlayer(c.world, components.SeatData{Name: name, PeerID: id, IsLocal: local})
}

// stepMatch runs one frame in the fixed phase order: input, physics and
// collisions, per-entity hooks, network, then the game-over check.
func (c *Controller) stepMatch(dt float64) {
	w := c.world

	systems.UpdateInput(w, c.keys)
	systems.UpdatePhysics(w, dt)
	systems.ResolveCollisions(w)
	w.Update(dt)
	systems.UpdateEffects(w)
	w.Match().Elapsed += dt

	if c.net != nil {
		c.net.Publish(w)
		c.net.Ingest(w)
	}

	if world.IsMatchOver(w) {
		c.finish()
	}
}

func (c *Controller) finish() {
	w := c.world
	m := w.Match()
	m.Over = true
	m.Winner, _ = world.Winner(w)
	c.lateLogged = false
	w.Audio().Queue(cfg.SoundGameOver)
	w.Audio().Music = components.MusicStop
	c.state = StateGameOver

	if m.Winner == "" {
		log.Printf("[game] match over after %.1fs: draw", m.Elapsed)
		return
	}
	log.Printf("[game] match over after %.1fs: %s wins", m.Elapsed, m.Winner)
}
