package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// SpawnFunc builds the entities for one level's authored content. Injected
// so tests can stream levels without touching image or audio assets.
type SpawnFunc func(w *ecs.World, lvl *worlds.Level) error

// LevelSpawnerSystem converges the resident set toward the streaming
// target: it tears down every stale level immediately and spawns at most
// one missing level per tick so a level change never stalls a frame.
type LevelSpawnerSystem struct {
	project   *worlds.Project
	residency *Residency
	spawn     SpawnFunc
	logger    *zap.Logger
}

func NewLevelSpawnerSystem(project *worlds.Project, residency *Residency, spawn SpawnFunc, logger *zap.Logger) *LevelSpawnerSystem {
	return &LevelSpawnerSystem{project: project, residency: residency, spawn: spawn, logger: logger}
}

func (s *LevelSpawnerSystem) Update(w *ecs.World) {
	if s == nil || s.residency == nil {
		return
	}
	s.residency.clearJustAdded()

	for _, iid := range s.residency.Stale() {
		s.unload(w, iid)
	}

	missing := s.residency.Missing()
	if len(missing) == 0 {
		return
	}
	iid := missing[0]
	lvl := s.project.LevelByIID(iid)
	if lvl == nil {
		s.logger.Error("spawn: unknown level in target set", zap.String("level_iid", iid))
		return
	}
	if s.spawn != nil {
		if err := s.spawn(w, lvl); err != nil {
			s.logger.Error("spawn: level content failed", zap.String("level", lvl.Identifier), zap.Error(err))
			return
		}
	}
	s.residency.add(iid)
	s.logger.Info("level streamed in", zap.String("level", lvl.Identifier))
}

func (s *LevelSpawnerSystem) unload(w *ecs.World, iid string) {
	var victims []ecs.Entity
	ecs.ForEach(w, component.LevelMemberComponent, func(e ecs.Entity, m *component.LevelMember) {
		if m.LevelIID == iid {
			victims = append(victims, e)
		}
	})
	for _, e := range victims {
		w.DestroyEntity(e)
	}
	s.residency.drop(iid)
	s.logger.Info("level streamed out", zap.String("level_iid", iid), zap.Int("entities", len(victims)))
}
