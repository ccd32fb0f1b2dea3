package components

import "github.com/yohamta/donburi"

// MenuItemData is one selectable main menu entry
type MenuItemData struct {
	Label      string
	Identifier string
}

var MenuItem = donburi.NewComponentType[MenuItemData]()

// LabelData is static text placed at the entity's transform
type LabelData struct {
	Text  string
	Title bool
}

var Label = donburi.NewComponentType[LabelData]()
