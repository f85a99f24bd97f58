package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// WalkAnimSystem drives the walk cycle from movement state: moving plays the
// facing's frame range, standing holds its first frame.
type WalkAnimSystem struct{}

func NewWalkAnimSystem() *WalkAnimSystem {
	return &WalkAnimSystem{}
}

func (s *WalkAnimSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.TileMoverComponent, component.AnimationComponent, component.WalkFramesComponent, func(_ ecs.Entity, mover *component.TileMover, anim *component.Animation, walk *component.WalkFrames) {
		r, ok := walk.Ranges[mover.Facing]
		if !ok || r.Last < r.First {
			// Unmapped or degenerate facing falls back to the sheet's
			// first frame instead of indexing out of range.
			anim.Playing = false
			anim.First, anim.Last = 0, 0
			anim.Frame = 0
			return
		}

		if anim.First != r.First || anim.Last != r.Last {
			anim.First, anim.Last = r.First, r.Last
			anim.Frame = r.First
			anim.Timer = 0
		}

		if mover.Moving != component.DirNone {
			anim.Playing = true
		} else {
			anim.Playing = false
			anim.Frame = r.First
			anim.Timer = 0
		}
	})
}
