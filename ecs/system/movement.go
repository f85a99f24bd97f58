package system

import (
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// MovementSystem steps grid-locked movers. A step commits the logical grid
// coord the tick it is accepted; the transform then glides to the new tile
// over StepTicks. Collisions are resolved against the BlockedTiles snapshot
// at intake, never mid-step, so movers cannot be half-blocked.
type MovementSystem struct {
	blocked *BlockedTiles
}

func NewMovementSystem(blocked *BlockedTiles) *MovementSystem {
	return &MovementSystem{blocked: blocked}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	ecs.ForEach3(w, component.TileMoverComponent, component.WorldGridCoordsComponent, component.TransformComponent, func(e ecs.Entity, mover *component.TileMover, coords *component.WorldGridCoords, tf *component.Transform) {
		if mover.Moving != component.DirNone {
			s.advance(w, e, mover, coords, tf)
		}

		if mover.Moving == component.DirNone {
			s.intake(w, e, mover, coords, tf)
		}

		mover.Want = component.DirNone
	})
}

func (s *MovementSystem) advance(w *ecs.World, e ecs.Entity, mover *component.TileMover, coords *component.WorldGridCoords, tf *component.Transform) {
	mover.Timer++
	if mover.StepTicks <= 0 || mover.Timer >= mover.StepTicks {
		tf.X, tf.Y = coords.PixelTopLeft()
		mover.Moving = component.DirNone
		mover.Timer = 0
		w.Events().Push(ecs.Event{Type: EventTileMoved, Data: TileMovedEvent{Entity: e, From: mover.From, To: *coords}})
		return
	}

	t := float64(mover.Timer) / float64(mover.StepTicks)
	fx, fy := mover.From.PixelTopLeft()
	tx, ty := coords.PixelTopLeft()
	tf.X = common.Lerp(fx, tx, t)
	tf.Y = common.Lerp(fy, ty, t)
}

func (s *MovementSystem) intake(w *ecs.World, e ecs.Entity, mover *component.TileMover, coords *component.WorldGridCoords, tf *component.Transform) {
	if mover.Want == component.DirNone {
		return
	}
	// A warping entity is locked in place until the warp resolves.
	if ecs.Has(w, e, component.WarpPendingComponent) {
		return
	}

	mover.Facing = mover.Want
	dx, dy := mover.Want.Vec()
	dest := coords.Offset(dx, dy)
	if s.blocked.Blocked(dest) {
		return
	}

	mover.From = *coords
	*coords = dest
	mover.Moving = mover.Want
	mover.Timer = 0
	tf.X, tf.Y = mover.From.PixelTopLeft()
}
