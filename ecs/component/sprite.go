package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a drawable image. When UseSource is set, only the Source
// sub-rectangle is drawn (sprite sheet frames).
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
}

var SpriteComponent = NewComponent[Sprite]()
