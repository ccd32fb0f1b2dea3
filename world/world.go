// Package world holds the live entity set of one game mode.
package world

import (
	"slices"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Mode identifies which population a world was built with
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeLobby
	ModeMatch
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main menu"
	case ModeLobby:
		return "lobby"
	case ModeMatch:
		return "match"
	}
	return "unknown"
}

// Populate fills a fresh world with the entities of one mode
type Populate func(w *World)

// World is an insertion-ordered set of entities backed by a donburi world,
// plus the broad-phase space their colliders live in. Removing an entity
// shifts later entities down; nothing is ever reordered.
type World struct {
	mode   Mode
	store  donburi.World
	order  []donburi.Entity
	space  *resolv.Space
	serial uint64
	state  *donburi.Entry
}

// New builds an empty world for mode and runs populate on it
func New(mode Mode, populate Populate) *World {
	store := donburi.NewWorld()
	w := &World{
		mode:  mode,
		store: store,
		space: resolv.NewSpace(int(cfg.Arena.Width), int(cfg.Arena.Height), cfg.Arena.CellSize, cfg.Arena.CellSize),
	}
	w.state = store.Entry(store.Create(components.Audio, components.ScreenShake, components.Match))
	if populate != nil {
		populate(w)
	}
	return w
}

func (w *World) Mode() Mode {
	return w.mode
}

// Store exposes the underlying donburi world for queries
func (w *World) Store() donburi.World {
	return w.store
}

func (w *World) Space() *resolv.Space {
	return w.space
}

// Create adds an entity with the given components at the end of the order
func (w *World) Create(cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(cs)+1)
	all = append(all, components.Identity)
	entity := w.store.Create(append(all, cs...)...)
	entry := w.store.Entry(entity)

	w.serial++
	components.Identity.SetValue(entry, components.IdentityData{Serial: w.serial})
	w.order = append(w.order, entity)
	return entry
}

// Remove deletes the entity and its broad-phase body. It reports false when
// the entry does not belong to this world.
func (w *World) Remove(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	entity := e.Entity()
	idx := slices.Index(w.order, entity)
	if idx < 0 {
		return false
	}
	if col, ok := components.Lookup(e, components.Collider); ok && col.Body != nil {
		w.space.Remove(col.Body)
	}
	w.order = slices.Delete(w.order, idx, idx+1)
	w.store.Remove(entity)
	return true
}

// Entries returns the live entities in insertion order
func (w *World) Entries() []*donburi.Entry {
	out := make([]*donburi.Entry, 0, len(w.order))
	for _, entity := range w.order {
		if w.store.Valid(entity) {
			out = append(out, w.store.Entry(entity))
		}
	}
	return out
}

func (w *World) Len() int {
	return len(w.order)
}

// Update runs every entity's per-frame hooks in insertion order
func (w *World) Update(dt float64) {
	for _, e := range w.Entries() {
		components.Tick(e, dt)
	}
}

// AttachCollider gives e a circular collider and registers its bounding box
// in the broad-phase space. e must already carry a Transform.
func (w *World) AttachCollider(e *donburi.Entry, radius float64) {
	tr := components.Transform.Get(e)
	body := resolv.NewObject(tr.X-radius, tr.Y-radius, radius*2, radius*2, tags.ResolvCombatant)
	body.Data = e.Entity()
	w.space.Add(body)
	components.Attach(e, components.Collider, components.ColliderData{Radius: radius, Body: body})
}

// SyncBody moves e's broad-phase body to its current transform
func (w *World) SyncBody(e *donburi.Entry) {
	col, ok := components.Lookup(e, components.Collider)
	if !ok || col.Body == nil {
		return
	}
	tr, ok := components.Lookup(e, components.Transform)
	if !ok {
		return
	}
	col.Body.X = tr.X - col.Radius
	col.Body.Y = tr.Y - col.Radius
	col.Body.Update()
}

// EntryOf resolves a broad-phase body back to its entity
func (w *World) EntryOf(body *resolv.Object) (*donburi.Entry, bool) {
	entity, ok := body.Data.(donburi.Entity)
	if !ok || !w.store.Valid(entity) {
		return nil, false
	}
	return w.store.Entry(entity), true
}

// FindByNetworkID returns the first entity whose network identity is id
func (w *World) FindByNetworkID(id string) (*donburi.Entry, bool) {
	for _, e := range w.Entries() {
		if n, ok := components.Lookup(e, components.NetworkIdentity); ok && n.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Combatants returns the match combatants in insertion order
func (w *World) Combatants() []*donburi.Entry {
	var out []*donburi.Entry
	for _, e := range w.Entries() {
		if e.HasComponent(tags.Combatant) {
			out = append(out, e)
		}
	}
	return out
}

// Audio is the world's queue of pending sound cues
func (w *World) Audio() *components.AudioData {
	return components.Audio.Get(w.state)
}

// Shake is the world's accumulated screen shake
func (w *World) Shake() *components.ScreenShakeData {
	return components.ScreenShake.Get(w.state)
}

// Match is the world's match outcome record
func (w *World) Match() *components.MatchData {
	return components.Match.Get(w.state)
}
