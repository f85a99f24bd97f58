package ecs

import "github.com/milk9111/overworld/ecs/component"

// Add attaches a component to an entity. Components are stored by pointer so
// systems mutate them in place.
func Add[T any](w *World, e Entity, h component.ComponentHandle[T], v *T) error {
	if v == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(h.Kind().ID(), true).Set(int(e.id()), v)
	return nil
}

// Get returns the entity's component of the handle's type, or (nil, false).
func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(h.Kind().ID(), false).Get(int(e.id()))
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// Has reports whether the entity holds a component of the handle's type.
func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(h.Kind().ID(), false).Has(int(e.id()))
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(h.Kind().ID(), false).Remove(int(e.id()))
}

// ForEach visits every live entity holding the component. The entity list is
// snapshotted first, so callbacks may add or remove components freely.
func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(h.Kind().ID(), false)
	if s == nil {
		return
	}
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.rehydrate(entityID(id))
		if !ok {
			continue
		}
		if v, ok := s.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ha.Kind().ID(), false)
	sb := w.store(hb.Kind().ID(), false)
	if sa == nil || sb == nil {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		if !sb.Has(id) {
			continue
		}
		e, ok := w.rehydrate(entityID(id))
		if !ok {
			continue
		}
		a, aok := sa.Get(id).(*A)
		b, bok := sb.Get(id).(*B)
		if aok && bok {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits entities holding all three components.
func ForEach3[A, B, C any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], hc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ha.Kind().ID(), false)
	sb := w.store(hb.Kind().ID(), false)
	sc := w.store(hc.Kind().ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		if !sb.Has(id) || !sc.Has(id) {
			continue
		}
		e, ok := w.rehydrate(entityID(id))
		if !ok {
			continue
		}
		a, aok := sa.Get(id).(*A)
		b, bok := sb.Get(id).(*B)
		c, cok := sc.Get(id).(*C)
		if aok && bok && cok {
			fn(e, a, b, c)
		}
	}
}
