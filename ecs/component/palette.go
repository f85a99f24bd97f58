package component

import "image/color"

// Palette is the singleton four-colour screen palette, darkest first. Levels
// author it as hex strings; the palette system keeps this in sync with the
// player's current level.
type Palette struct {
	Colours [4]color.RGBA
}

var PaletteComponent = NewComponent[Palette]()
