package ecs

import "github.com/milk9111/overworld/ecs/component"

// World owns entities, component storages, and the event queue. Systems are
// kept separate (Scheduler) so the world stays pure data.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all its components. Returns false
// if the handle was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// First returns any one entity holding the given component kind. Useful for
// singleton components (screen fade, music player).
func (w *World) First(k component.Kind) (Entity, bool) {
	s := w.store(k.ID(), false)
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	id := s.Entities()[0]
	return w.rehydrate(entityID(id))
}

// Query returns all entities holding every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	// Iterate the smallest storage and probe the rest.
	var smallest *SparseSet
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.Entities() {
		all := true
		for _, k := range kinds {
			if s := w.store(k.ID(), false); s == nil || !s.Has(id) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if e, ok := w.rehydrate(entityID(id)); ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// rehydrate rebuilds a full Entity handle from a bare storage id.
func (w *World) rehydrate(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(w.entities.gen) {
		return 0, false
	}
	e := makeEntity(id, w.entities.gen[id-1])
	if !w.entities.isAlive(e) {
		return 0, false
	}
	return e, true
}
