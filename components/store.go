package components

import "github.com/yohamta/donburi"

// Ticker is implemented by component data that advances every frame.
// Plain data components (Transform, Velocity, Collider, NetworkIdentity) have no hook.
type Ticker interface {
	Tick(dt float64)
}

// Attach stores v under ct on the entry, adding the component if missing.
// An existing value of the same kind is overwritten.
func Attach[T any](e *donburi.Entry, ct *donburi.ComponentType[T], v T) {
	if !e.HasComponent(ct) {
		e.AddComponent(ct)
	}
	ct.SetValue(e, v)
}

// Lookup returns the component of kind ct, or false when the entry lacks it.
func Lookup[T any](e *donburi.Entry, ct *donburi.ComponentType[T]) (*T, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(ct) {
		return nil, false
	}
	return ct.Get(e), true
}

// Has reports whether the entry carries ct
func Has[T any](e *donburi.Entry, ct *donburi.ComponentType[T]) bool {
	return e != nil && e.Valid() && e.HasComponent(ct)
}

// Detach removes ct from the entry. Missing components are ignored.
func Detach[T any](e *donburi.Entry, ct *donburi.ComponentType[T]) {
	if Has(e, ct) {
		e.RemoveComponent(ct)
	}
}

func hook[T any, PT interface {
	*T
	Ticker
}](ct *donburi.ComponentType[T]) func(*donburi.Entry) Ticker {
	return func(e *donburi.Entry) Ticker {
		if !e.HasComponent(ct) {
			return nil
		}
		return PT(ct.Get(e))
	}
}

// hooks lists every component kind with a per-frame hook, in run order.
var hooks = []func(*donburi.Entry) Ticker{
	hook[PlayerData](Player),
	hook[ComboData](Combo),
}

// Tick runs the per-frame hook of every ticking component on the entry
func Tick(e *donburi.Entry, dt float64) {
	if e == nil || !e.Valid() {
		return
	}
	for _, h := range hooks {
		if t := h(e); t != nil {
			t.Tick(dt)
		}
	}
}
