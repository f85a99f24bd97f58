package component

import "github.com/milk9111/overworld/common"

// WorldGridCoords is an entity's logical tile position in the unified world
// grid. X/Y are tile indices with y growing upward; Z is the world depth
// layer. Entities on different depths never interact.
type WorldGridCoords struct {
	X int
	Y int
	Z int
}

// PixelTopLeft returns the world pixel position (y-down) of the tile's
// top-left corner. The y-up grid row covers pixels [-(y+1)*t, -y*t).
func (c WorldGridCoords) PixelTopLeft() (x, y float64) {
	return float64(c.X * common.TileSize), float64(-(c.Y + 1) * common.TileSize)
}

// Offset returns the coordinate shifted by a grid delta on the same depth.
func (c WorldGridCoords) Offset(dx, dy int) WorldGridCoords {
	return WorldGridCoords{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
}

var WorldGridCoordsComponent = NewComponent[WorldGridCoords]()

// GridCoordsPending marks an entity spawned from authored level-local
// coordinates that has not been resolved into the world grid yet. The
// resolver consumes it on the entity's first tick.
type GridCoordsPending struct {
	LevelIID string
	LocalX   int
	LocalY   int
}

var GridCoordsPendingComponent = NewComponent[GridCoordsPending]()
