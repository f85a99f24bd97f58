package entity

import (
	"fmt"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/worlds"
)

// SpawnLevel builds one level's streamed content. Player placements are
// skipped here: the player spawns once at startup from the project table of
// contents. Warp pads and targets carry no entities either; the warp index
// resolves them world-wide before any level loads.
func SpawnLevel(w *ecs.World, lvl *worlds.Level, actorSpec *prefabs.ActorSpec) error {
	if lvl == nil {
		return fmt.Errorf("entity: spawn nil level")
	}
	for _, inst := range lvl.Entities {
		switch inst.Type {
		case "Actor":
			if _, err := NewActor(w, actorSpec, inst); err != nil {
				return fmt.Errorf("entity: level %s: %w", lvl.Identifier, err)
			}
		case "Player", "Warp", "WarpTarget":
			// Handled outside streaming.
		}
	}
	return nil
}
