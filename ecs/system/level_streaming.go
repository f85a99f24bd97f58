package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// LevelStreamingSystem derives the desired resident set each tick: every
// tracked entity's current level plus its same-depth neighbours. Stale
// neighbours of a level the player just left fall out of the target set and
// the spawner tears them down.
type LevelStreamingSystem struct {
	neighbours *NeighbourCache
	residency  *Residency
}

func NewLevelStreamingSystem(neighbours *NeighbourCache, residency *Residency) *LevelStreamingSystem {
	return &LevelStreamingSystem{neighbours: neighbours, residency: residency}
}

func (s *LevelStreamingSystem) Update(w *ecs.World) {
	if s == nil || s.residency == nil {
		return
	}

	seen := make(map[string]bool)
	var target []string
	add := func(iid string) {
		if iid == "" || seen[iid] {
			return
		}
		seen[iid] = true
		target = append(target, iid)
	}

	ecs.ForEach(w, component.CurrentLevelComponent, func(_ ecs.Entity, cur *component.CurrentLevel) {
		add(cur.LevelIID)
		for _, n := range s.neighbours.Neighbours(cur.LevelIID) {
			add(n)
		}
	})

	s.residency.SetTarget(target)
}
