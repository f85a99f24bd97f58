package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// InputSystem maps held movement keys onto the player's mover. Held keys
// repeat: grid movement re-reads the request every time a step completes.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (s *InputSystem) Update(w *ecs.World) {
	want := component.DirNone
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		want = component.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		want = component.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		want = component.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		want = component.DirRight
	}

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.TileMoverComponent.Kind()) {
		if mover, ok := ecs.Get(w, e, component.TileMoverComponent); ok {
			mover.Want = want
		}
	}
}
