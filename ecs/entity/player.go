package entity

import (
	"fmt"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/worlds"
)

// NewPlayer builds the player from its prefab spec and authored placement.
// The player is never a level member; it survives streaming.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, inst *worlds.Instance) (ecs.Entity, error) {
	if spec == nil || inst == nil || inst.Level() == nil {
		return 0, fmt.Errorf("entity: player needs a spec and an authored placement")
	}

	sheetPath := inst.Fields.String("spritesheet")
	if sheetPath == "" {
		sheetPath = spec.Sprite.Image
	}
	sheet, err := assets.LoadImage(sheetPath)
	if err != nil {
		return 0, fmt.Errorf("entity: player sheet %s: %w", sheetPath, err)
	}

	lvl := inst.Level()
	lx, ly := lvl.LocalGrid(inst.Px[0], inst.Px[1], inst.Width, inst.Height)

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerComponent, &component.Player{})
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
	_ = ecs.Add(w, e, component.CurrentLevelComponent, &component.CurrentLevel{LevelIID: lvl.IID})
	_ = ecs.Add(w, e, component.GridCoordsPendingComponent, &component.GridCoordsPending{
		LevelIID: lvl.IID,
		LocalX:   lx,
		LocalY:   ly,
	})
	return e, nil
}

// WalkRanges converts prefab walk ranges into the component form.
func WalkRanges(walk map[string]prefabs.FrameRangeSpec) map[component.Direction]component.FrameRange {
	ranges := make(map[component.Direction]component.FrameRange, len(walk))
	for name, r := range walk {
		var d component.Direction
		switch name {
		case "up":
			d = component.DirUp
		case "down":
			d = component.DirDown
		case "left":
			d = component.DirLeft
		case "right":
			d = component.DirRight
		default:
			continue
		}
		ranges[d] = component.FrameRange{First: r.First, Last: r.Last}
	}
	return ranges
}
