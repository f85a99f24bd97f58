package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// LevelTrackerSystem keeps each tracked entity's CurrentLevel in sync with
// its world grid position and emits the level change events. Membership is
// containment in a level's grid bounds on the entity's depth; when authored
// bounds overlap, the first level in file order wins (worldlint flags the
// overlap).
type LevelTrackerSystem struct {
	project   *worlds.Project
	residency *Residency
	logger    *zap.Logger
}

func NewLevelTrackerSystem(project *worlds.Project, residency *Residency, logger *zap.Logger) *LevelTrackerSystem {
	return &LevelTrackerSystem{project: project, residency: residency, logger: logger}
}

func (s *LevelTrackerSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}

	justAdded := make(map[string]bool)
	for _, iid := range s.residency.JustAdded() {
		justAdded[iid] = true
	}

	ecs.ForEach2(w, component.CurrentLevelComponent, component.WorldGridCoordsComponent, func(e ecs.Entity, cur *component.CurrentLevel, coords *component.WorldGridCoords) {
		// Flush the deferred loaded event for a level that finished
		// spawning since last tick.
		if ecs.Has(w, e, component.CurrentLevelLoadingComponent) && justAdded[cur.LevelIID] {
			ecs.Remove(w, e, component.CurrentLevelLoadingComponent)
			w.Events().Push(ecs.Event{Type: EventLevelChangedAndLoaded, Data: LevelChangedAndLoadedEvent{Entity: e, LevelIID: cur.LevelIID}})
		}

		lvl := s.levelAt(*coords)
		if lvl == nil || lvl.IID == cur.LevelIID {
			return
		}

		prev := cur.LevelIID
		cur.LevelIID = lvl.IID
		s.logger.Info("level changed",
			zap.Stringer("entity", e),
			zap.String("from", prev),
			zap.String("to", lvl.Identifier))
		w.Events().Push(ecs.Event{Type: EventLevelChanged, Data: LevelChangedEvent{Entity: e, LevelIID: lvl.IID, PrevIID: prev}})

		if s.residency.IsResident(lvl.IID) {
			ecs.Remove(w, e, component.CurrentLevelLoadingComponent)
			w.Events().Push(ecs.Event{Type: EventLevelChangedAndLoaded, Data: LevelChangedAndLoadedEvent{Entity: e, LevelIID: lvl.IID}})
		} else {
			_ = ecs.Add(w, e, component.CurrentLevelLoadingComponent, &component.CurrentLevelLoading{})
		}
	})
}

func (s *LevelTrackerSystem) levelAt(coords component.WorldGridCoords) *worlds.Level {
	for _, lvl := range s.project.Levels {
		if lvl.WorldDepth != coords.Z {
			continue
		}
		ox, oy := lvl.GridOrigin()
		if coords.X >= ox && coords.X < ox+lvl.GridWidth() &&
			coords.Y >= oy && coords.Y < oy+lvl.GridHeight() {
			return lvl
		}
	}
	return nil
}
