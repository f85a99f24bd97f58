package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// BlockedTiles is the per-tick snapshot of impassable world grid coords.
// Rebuilt from scratch every tick from the resident levels' collision grids
// plus any entities carrying the Blocking tag, so unloading a level frees
// its tiles with no bookkeeping.
type BlockedTiles struct {
	tiles map[component.WorldGridCoords]bool
}

func NewBlockedTiles() *BlockedTiles {
	return &BlockedTiles{tiles: make(map[component.WorldGridCoords]bool)}
}

// Blocked reports whether a mover may not enter the coord.
func (b *BlockedTiles) Blocked(c component.WorldGridCoords) bool {
	if b == nil {
		return false
	}
	return b.tiles[c]
}

func (b *BlockedTiles) mark(c component.WorldGridCoords) {
	b.tiles[c] = true
}

func (b *BlockedTiles) reset() {
	clear(b.tiles)
}

// BlockedTilesSystem rebuilds the BlockedTiles snapshot each tick.
type BlockedTilesSystem struct {
	project   *worlds.Project
	residency *Residency
	blocked   *BlockedTiles
}

func NewBlockedTilesSystem(project *worlds.Project, residency *Residency, blocked *BlockedTiles) *BlockedTilesSystem {
	return &BlockedTilesSystem{project: project, residency: residency, blocked: blocked}
}

func (s *BlockedTilesSystem) Update(w *ecs.World) {
	if s == nil || s.blocked == nil {
		return
	}
	s.blocked.reset()

	for _, iid := range s.residency.Resident() {
		lvl := s.project.LevelByIID(iid)
		if lvl == nil {
			continue
		}
		ox, oy := lvl.GridOrigin()
		for ly := 0; ly < lvl.GridHeight(); ly++ {
			for lx := 0; lx < lvl.GridWidth(); lx++ {
				if lvl.BlockedAt(lx, ly) {
					s.blocked.mark(component.WorldGridCoords{X: ox + lx, Y: oy + ly, Z: lvl.WorldDepth})
				}
			}
		}
	}

	ecs.ForEach2(w, component.BlockingComponent, component.WorldGridCoordsComponent, func(_ ecs.Entity, _ *component.Blocking, c *component.WorldGridCoords) {
		s.blocked.mark(*c)
	})
}
