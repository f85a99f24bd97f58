package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

const (
	// EventTileMoved fires when a mover finishes a grid step.
	EventTileMoved = "tile_moved"
	// EventLevelChanged fires when an entity's current level changes,
	// whether or not the destination content is streamed in yet.
	EventLevelChanged = "level_changed"
	// EventLevelChangedAndLoaded fires once the changed-to level is
	// resident. It fires on the same tick as EventLevelChanged when the
	// destination was already loaded, otherwise on the tick its content
	// finishes spawning.
	EventLevelChangedAndLoaded = "level_changed_and_loaded"
)

type TileMovedEvent struct {
	Entity ecs.Entity
	From   component.WorldGridCoords
	To     component.WorldGridCoords
}

type LevelChangedEvent struct {
	Entity   ecs.Entity
	LevelIID string
	PrevIID  string
}

type LevelChangedAndLoadedEvent struct {
	Entity   ecs.Entity
	LevelIID string
}
