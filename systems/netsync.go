package systems

import (
	"log"
	"time"

	"github.com/automoto/shapefighter/archetypes"
	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/shared/messages"
	"github.com/automoto/shapefighter/world"
)

// Link is the message transport the network phase talks through. Send is
// fire-and-forget; Drain returns everything received since the last call.
type Link interface {
	Send(t messages.Type, payload any) error
	Drain() []messages.Envelope
}

// GatherSnapshot collects every networked player's public state in
// insertion order
func GatherSnapshot(w *world.World) messages.GameState {
	state := messages.GameState{Players: []messages.PlayerState{}}
	for _, e := range w.Entries() {
		netID, ok := components.Lookup(e, components.NetworkIdentity)
		if !ok {
			continue
		}
		player, ok := components.Lookup(e, components.Player)
		if !ok {
			continue
		}
		tr, ok := components.Lookup(e, components.Transform)
		if !ok {
			continue
		}
		state.Players = append(state.Players, messages.PlayerState{
			ID:      netID.ID,
			Name:    player.Name,
			X:       tr.X,
			Y:       tr.Y,
			Health:  player.Health,
			Stamina: player.Stamina,
		})
	}
	return state
}

// LocalInput builds the PLAYER_INPUT payload for the entity with localID
func LocalInput(w *world.World, localID string) (messages.PlayerInput, bool) {
	e, ok := w.FindByNetworkID(localID)
	if !ok {
		return messages.PlayerInput{}, false
	}
	in := messages.PlayerInput{PlayerID: localID}
	if intent, ok := components.Lookup(e, components.Intent); ok {
		in.Input = messages.Buttons{
			Left:   intent.Held(cfg.ActionMoveLeft),
			Right:  intent.Held(cfg.ActionMoveRight),
			Up:     intent.Held(cfg.ActionMoveUp),
			Down:   intent.Held(cfg.ActionMoveDown),
			Attack: intent.Held(cfg.ActionAttack),
			Block:  intent.Held(cfg.ActionBlock),
		}
	}
	return in, true
}

// ApplyGameState reconciles a remote snapshot into w. The local
// authoritative player is never touched; known remote players drift toward
// the reported position and take health, stamina and name verbatim; unknown
// ids are spawned. It returns the number of spawned entities.
func ApplyGameState(w *world.World, state messages.GameState, localID string, now time.Time) int {
	spawned := 0
	for _, ps := range state.Players {
		e, ok := w.FindByNetworkID(ps.ID)
		if !ok {
			spawnRemote(w, ps, now)
			spawned++
			continue
		}
		if ps.ID == localID {
			continue
		}
		if p, ok := components.Lookup(e, components.Player); ok && p.IsLocal {
			continue
		}

		player, ok := components.Lookup(e, components.Player)
		if !ok {
			continue
		}
		tr, ok := components.Lookup(e, components.Transform)
		if !ok {
			continue
		}
		player.Name = ps.Name
		player.Health = clamp(ps.Health, 0, cfg.Player.MaxHealth)
		player.Stamina = clamp(ps.Stamina, 0, cfg.Player.MaxStamina)

		f := cfg.Net.InterpolationFactor
		tr.X += (ps.X - tr.X) * f
		tr.Y += (ps.Y - tr.Y) * f
		w.SyncBody(e)

		if n, ok := components.Lookup(e, components.NetworkIdentity); ok {
			n.LastUpdate = now
		}
	}
	return spawned
}

func spawnRemote(w *world.World, ps messages.PlayerState, now time.Time) {
	e := archetypes.RemotePlayer.Spawn(w)
	components.NetworkIdentity.SetValue(e, components.NetworkIdentityData{ID: ps.ID, LastUpdate: now})
	p := components.NewPlayer(ps.Name, ps.ID, false)
	p.Health = clamp(ps.Health, 0, cfg.Player.MaxHealth)
	p.Stamina = clamp(ps.Stamina, 0, cfg.Player.MaxStamina)
	components.Player.SetValue(e, p)
	components.Transform.SetValue(e, components.TransformData{X: ps.X, Y: ps.Y})
	log.Printf("[netsync] spawned remote player %q (%s)", ps.Name, ps.ID)
}

// ApplyPlayerLeave removes the entity for a departed peer. It reports
// whether an entity was removed.
func ApplyPlayerLeave(w *world.World, id string) bool {
	e, ok := w.FindByNetworkID(id)
	if !ok {
		return false
	}
	log.Printf("[netsync] player left: %s", id)
	return w.Remove(e)
}

// ApplyPlayerInput mirrors a peer's block button onto its entity so the
// blocking ring shows between snapshots.
func ApplyPlayerInput(w *world.World, in messages.PlayerInput, localID string) {
	if in.PlayerID == localID {
		return
	}
	e, ok := w.FindByNetworkID(in.PlayerID)
	if !ok {
		return
	}
	if p, ok := components.Lookup(e, components.Player); ok && !p.IsLocal {
		p.Blocking = in.Input.Block
	}
}

// NetSync is the per-frame network phase of a match
type NetSync struct {
	link    Link
	localID string
	now     func() time.Time
}

func NewNetSync(link Link, localID string) *NetSync {
	return &NetSync{
		link:    link,
		localID: localID,
		now:     time.Now,
	}
}

func (n *NetSync) LocalID() string {
	return n.localID
}

// Publish sends this frame's snapshot and local input. Send failures are
// logged and dropped; nothing waits for the peer.
func (n *NetSync) Publish(w *world.World) {
	if err := n.link.Send(messages.TypeGameState, GatherSnapshot(w)); err != nil {
		log.Printf("[netsync] send game state: %v", err)
	}
	if in, ok := LocalInput(w, n.localID); ok {
		if err := n.link.Send(messages.TypePlayerInput, in); err != nil {
			log.Printf("[netsync] send input: %v", err)
		}
	}
}

// Ingest applies every message received since the last frame
func (n *NetSync) Ingest(w *world.World) {
	for _, env := range n.link.Drain() {
		n.Apply(w, env)
	}
}

// Apply dispatches one received message onto the match world
func (n *NetSync) Apply(w *world.World, env messages.Envelope) {
	switch env.Type {
	case messages.TypeGameState:
		state, err := messages.Payload[messages.GameState](env)
		if err != nil {
			log.Printf("[netsync] %v", err)
			return
		}
		ApplyGameState(w, state, n.localID, n.now())
	case messages.TypePlayerInput:
		in, err := messages.Payload[messages.PlayerInput](env)
		if err != nil {
			log.Printf("[netsync] %v", err)
			return
		}
		ApplyPlayerInput(w, in, n.localID)
	case messages.TypePlayerJoin:
		join, err := messages.Payload[messages.PlayerJoin](env)
		if err != nil {
			log.Printf("[netsync] %v", err)
			return
		}
		log.Printf("[netsync] player joined: %s", join.PlayerID)
	case messages.TypePlayerLeave:
		leave, err := messages.Payload[messages.PlayerLeave](env)
		if err != nil {
			log.Printf("[netsync] %v", err)
			return
		}
		ApplyPlayerLeave(w, leave.PlayerID)
	default:
		log.Printf("[netsync] ignoring unhandled message type %s", env.Type)
	}
}
