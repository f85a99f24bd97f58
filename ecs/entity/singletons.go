package entity

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/ecs/system"
)

// NewCamera builds the singleton camera.
func NewCamera(w *ecs.World, smoothness float64) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.CameraComponent, &component.Camera{Smoothness: smoothness})
	return e
}

// NewScreenFade builds the singleton fade overlay, starting clear.
func NewScreenFade(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.ScreenFadeComponent, &component.ScreenFade{})
	return e
}

// NewPalette builds the singleton screen palette with the default colours.
func NewPalette(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PaletteComponent, &component.Palette{Colours: system.DefaultPalette})
	return e
}

// NewMusicRequest queues a one-shot track switch.
func NewMusicRequest(w *ecs.World, track string) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.MusicRequestComponent, &component.MusicRequest{Track: track})
	return e
}
