package world

import (
	"math"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
)

// MenuItems returns the main menu entries in display order
func MenuItems(w *World) []components.MenuItemData {
	var out []components.MenuItemData
	for _, e := range w.Entries() {
		if item, ok := components.Lookup(e, components.MenuItem); ok {
			out = append(out, *item)
		}
	}
	return out
}

// SelectedMenuItem hit-tests a point against the menu entries and returns the
// identifier of the entry under it.
func SelectedMenuItem(w *World, x, y float64) (string, bool) {
	for _, e := range w.Entries() {
		item, ok := components.Lookup(e, components.MenuItem)
		if !ok {
			continue
		}
		tr := components.Transform.Get(e)
		if math.Abs(x-tr.X) <= cfg.Menu.HitHalfWidth && math.Abs(y-tr.Y) <= cfg.Menu.HitHalfHeight {
			return item.Identifier, true
		}
	}
	return "", false
}
