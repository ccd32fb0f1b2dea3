package world

import "github.com/automoto/shapefighter/components"

// IsMatchOver reports whether at most one combatant still has health
func IsMatchOver(w *World) bool {
	alive := 0
	for _, e := range w.Combatants() {
		if p, ok := components.Lookup(e, components.Player); ok && p.Alive() {
			alive++
		}
	}
	return alive <= 1
}

// Winner returns the name of the last combatant standing, or false on a draw
func Winner(w *World) (string, bool) {
	name := ""
	alive := 0
	for _, e := range w.Combatants() {
		if p, ok := components.Lookup(e, components.Player); ok && p.Alive() {
			alive++
			name = p.Name
		}
	}
	if alive != 1 {
		return "", false
	}
	return name, true
}
