package system

import (
	"image"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// AnimationSystem advances playing animations and keeps each sprite's source
// rect on the current frame. Sheets are a single row of equal-width frames.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if anim.Frame < anim.First || anim.Frame > anim.Last {
			anim.Frame = anim.First
		}

		if anim.Playing && anim.TicksPerFrame > 0 {
			anim.Timer++
			if anim.Timer >= anim.TicksPerFrame {
				anim.Timer = 0
				anim.Frame++
				if anim.Frame > anim.Last {
					anim.Frame = anim.First
				}
			}
		}

		if anim.FrameW <= 0 || anim.FrameH <= 0 {
			return
		}
		x0 := anim.Frame * anim.FrameW
		sprite.Source = image.Rect(x0, 0, x0+anim.FrameW, anim.FrameH)
		sprite.UseSource = true
	})
}
