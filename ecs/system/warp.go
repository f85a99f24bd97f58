package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// WarpSystem triggers warps when the player finishes a step onto a warp pad
// and runs the fade-relocate-reveal state machine. Only completed steps
// trigger: relocation itself never emits a tile-moved event, so arriving on
// top of another warp pad does not chain.
type WarpSystem struct {
	index     *WarpIndex
	residency *Residency
	fadeTicks int
	logger    *zap.Logger
}

func NewWarpSystem(index *WarpIndex, residency *Residency, fadeTicks int, logger *zap.Logger) *WarpSystem {
	if fadeTicks <= 0 {
		fadeTicks = 24
	}
	return &WarpSystem{index: index, residency: residency, fadeTicks: fadeTicks, logger: logger}
}

func (s *WarpSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	triggered := s.trigger(w)
	s.step(w, triggered)
}

func (s *WarpSystem) trigger(w *ecs.World) map[ecs.Entity]bool {
	triggered := make(map[ecs.Entity]bool)
	for _, evt := range w.Events().Items() {
		if evt.Type != EventTileMoved {
			continue
		}
		moved, ok := evt.Data.(TileMovedEvent)
		if !ok {
			continue
		}
		if !ecs.Has(w, moved.Entity, component.PlayerComponent) {
			continue
		}
		if ecs.Has(w, moved.Entity, component.WarpPendingComponent) {
			continue
		}
		ref, hit := s.index.Tiles[moved.To]
		if !hit {
			continue
		}
		s.logger.Info("warp triggered",
			zap.Stringer("entity", moved.Entity),
			zap.String("target_entity", ref.EntityIID),
			zap.String("target_level", ref.LevelIID))
		_ = ecs.Add(w, moved.Entity, component.WarpPendingComponent, &component.WarpPending{
			TargetEntityIID: ref.EntityIID,
			TargetLevelIID:  ref.LevelIID,
			Phase:           component.WarpFadeOut,
			FadeTicks:       s.fadeTicks,
		})
		triggered[moved.Entity] = true
	}
	return triggered
}

// step advances every in-flight warp except the ones that triggered this
// tick; their fade starts on the next.
func (s *WarpSystem) step(w *ecs.World, triggered map[ecs.Entity]bool) {
	ecs.ForEach(w, component.WarpPendingComponent, func(e ecs.Entity, warp *component.WarpPending) {
		if triggered[e] {
			return
		}
		switch warp.Phase {
		case component.WarpFadeOut:
			warp.Timer++
			s.setDarkness(w, float64(warp.Timer)/float64(warp.FadeTicks))
			if warp.Timer >= warp.FadeTicks {
				s.relocate(w, e, warp)
			}
		case component.WarpAwaitLoad:
			if s.residency.IsResident(warp.TargetLevelIID) {
				warp.Phase = component.WarpFadeIn
				warp.Timer = warp.FadeTicks
			}
		case component.WarpFadeIn:
			warp.Timer--
			s.setDarkness(w, float64(warp.Timer)/float64(warp.FadeTicks))
			if warp.Timer <= 0 {
				s.setDarkness(w, 0)
				ecs.Remove(w, e, component.WarpPendingComponent)
			}
		}
	})
}

// relocate teleports the entity to the warp target's tile. A dangling
// target reference aborts the warp and reveals the screen where the entity
// already stands.
func (s *WarpSystem) relocate(w *ecs.World, e ecs.Entity, warp *component.WarpPending) {
	target, ok := s.index.Targets[warp.TargetEntityIID]
	if !ok {
		s.logger.Error("warp: target does not exist, aborting",
			zap.Stringer("entity", e),
			zap.String("target_entity", warp.TargetEntityIID))
		s.setDarkness(w, 0)
		ecs.Remove(w, e, component.WarpPendingComponent)
		return
	}

	if coords, ok := ecs.Get(w, e, component.WorldGridCoordsComponent); ok {
		*coords = target
	}
	if tf, ok := ecs.Get(w, e, component.TransformComponent); ok {
		tf.X, tf.Y = target.PixelTopLeft()
	}
	if mover, ok := ecs.Get(w, e, component.TileMoverComponent); ok {
		mover.Moving = component.DirNone
		mover.Want = component.DirNone
		mover.Timer = 0
		mover.From = target
	}

	if s.residency.IsResident(warp.TargetLevelIID) {
		warp.Phase = component.WarpFadeIn
		warp.Timer = warp.FadeTicks
	} else {
		// Hold the screen dark until the destination streams in.
		warp.Phase = component.WarpAwaitLoad
	}
}

func (s *WarpSystem) setDarkness(w *ecs.World, darkness float64) {
	if darkness < 0 {
		darkness = 0
	}
	if darkness > 1 {
		darkness = 1
	}
	e, ok := w.First(component.ScreenFadeComponent.Kind())
	if !ok {
		return
	}
	if fade, ok := ecs.Get(w, e, component.ScreenFadeComponent); ok {
		fade.Darkness = darkness
	}
}
