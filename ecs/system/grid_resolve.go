package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// GridResolveSystem converts freshly spawned entities' level-local authored
// positions into unified world grid coords, then drops the pending marker.
// Runs before anything that reads grid positions, so an entity is never
// visible to movement or membership with unresolved coords.
type GridResolveSystem struct {
	project *worlds.Project
	logger  *zap.Logger
}

func NewGridResolveSystem(project *worlds.Project, logger *zap.Logger) *GridResolveSystem {
	return &GridResolveSystem{project: project, logger: logger}
}

func (s *GridResolveSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	ecs.ForEach(w, component.GridCoordsPendingComponent, func(e ecs.Entity, pending *component.GridCoordsPending) {
		lvl := s.project.LevelByIID(pending.LevelIID)
		if lvl == nil {
			// Leave the marker in place; the entity is retried next tick
			// and stays invisible to movement and membership until then.
			s.logger.Warn("resolve: unknown level, deferring",
				zap.String("level_iid", pending.LevelIID),
				zap.Stringer("entity", e))
			return
		}

		ox, oy := lvl.GridOrigin()
		coords := component.WorldGridCoords{
			X: ox + pending.LocalX,
			Y: oy + pending.LocalY,
			Z: lvl.WorldDepth,
		}
		_ = ecs.Add(w, e, component.WorldGridCoordsComponent, &coords)

		if tf, ok := ecs.Get(w, e, component.TransformComponent); ok {
			tf.X, tf.Y = coords.PixelTopLeft()
		}

		ecs.Remove(w, e, component.GridCoordsPendingComponent)
	})
}
