package system

import (
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// WarpRef names a warp destination by its authored ids.
type WarpRef struct {
	EntityIID string
	LevelIID  string
}

// WarpIndex is the world-wide warp lookup, built once from the project's
// table of contents before any level streams in. Tiles maps a warp pad's
// world grid coord to its destination reference; Targets maps a warp target
// entity iid to the coord it marks. Destinations resolve whether or not
// their owning level is loaded.
type WarpIndex struct {
	Tiles   map[component.WorldGridCoords]WarpRef
	Targets map[string]component.WorldGridCoords
}

func BuildWarpIndex(p *worlds.Project) *WarpIndex {
	idx := &WarpIndex{
		Tiles:   make(map[component.WorldGridCoords]WarpRef),
		Targets: make(map[string]component.WorldGridCoords),
	}
	if p == nil {
		return idx
	}

	for _, inst := range p.TOC("Warp") {
		entityIID, levelIID, ok := inst.Fields.Ref("target")
		if !ok {
			continue
		}
		idx.Tiles[instanceGridCoords(inst)] = WarpRef{EntityIID: entityIID, LevelIID: levelIID}
	}

	for _, inst := range p.TOC("WarpTarget") {
		idx.Targets[inst.IID] = instanceGridCoords(inst)
	}

	return idx
}

// instanceGridCoords resolves an authored instance to world grid coords by
// going through its owning level's origin. Converting level-locally keeps
// the math exact for negative world coordinates, where dividing world
// pixels directly would truncate toward zero.
func instanceGridCoords(inst *worlds.Instance) component.WorldGridCoords {
	lvl := inst.Level()
	ox, oy := lvl.GridOrigin()
	lx, ly := lvl.LocalGrid(inst.Px[0], inst.Px[1], inst.Width, inst.Height)
	return component.WorldGridCoords{X: ox + lx, Y: oy + ly, Z: lvl.WorldDepth}
}
