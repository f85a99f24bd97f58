package entity

import (
	"fmt"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/worlds"
)

// NewActor builds a scripted wanderer owned by its authored level; it is
// torn down when the level streams out. Actors block movers, so the player
// cannot walk through them.
func NewActor(w *ecs.World, spec *prefabs.ActorSpec, inst *worlds.Instance) (ecs.Entity, error) {
	if spec == nil || inst == nil || inst.Level() == nil {
		return 0, fmt.Errorf("entity: actor needs a spec and an authored placement")
	}

	sheetPath := inst.Fields.String("spritesheet")
	if sheetPath == "" {
		sheetPath = spec.Sprite.Image
	}
	sheet, err := assets.LoadImage(sheetPath)
	if err != nil {
		return 0, fmt.Errorf("entity: actor sheet %s: %w", sheetPath, err)
	}

	script := inst.Fields.String("script")
	if script == "" {
		script = spec.Script
	}

	lvl := inst.Level()
	lx, ly := lvl.LocalGrid(inst.Px[0], inst.Px[1], inst.Width, inst.Height)

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{})
	_ = ecs.Add(w, e, component.BlockingComponent, &component.Blocking{})
	_ = ecs.Add(w, e, component.LevelMemberComponent, &component.LevelMember{LevelIID: lvl.IID})
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{})
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: sheet})
	_ = ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		FrameW:        spec.Sprite.FrameW,
		FrameH:        spec.Sprite.FrameH,
		TicksPerFrame: spec.Animation.TicksPerFrame,
	})
	_ = ecs.Add(w, e, component.WalkFramesComponent, &component.WalkFrames{Ranges: WalkRanges(spec.Animation.Walk)})
	_ = ecs.Add(w, e, component.TileMoverComponent, &component.TileMover{
		StepTicks: spec.StepTicks,
		Facing:    component.DirDown,
	})
	_ = ecs.Add(w, e, component.ActorBrainComponent, &component.ActorBrain{
		Script:     script,
		ThinkTicks: spec.ThinkTicks,
	})
	_ = ecs.Add(w, e, component.GridCoordsPendingComponent, &component.GridCoordsPending{
		LevelIID: lvl.IID,
		LocalX:   lx,
		LocalY:   ly,
	})
	return e, nil
}
