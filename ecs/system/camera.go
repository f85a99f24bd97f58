package system

import (
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// CameraSystem keeps the camera centred on the player with a smoothing lag.
// During a warp the camera snaps, so the reveal opens on the destination
// rather than panning across the world.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	camEnt, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEnt, component.CameraComponent)
	if !ok {
		return
	}

	players := w.Query(component.PlayerComponent.Kind(), component.TransformComponent.Kind())
	if len(players) == 0 {
		return
	}
	tf, ok := ecs.Get(w, players[0], component.TransformComponent)
	if !ok {
		return
	}

	targetX := tf.X + float64(common.TileSize)/2 - float64(common.BaseWidth)/2
	targetY := tf.Y + float64(common.TileSize)/2 - float64(common.BaseHeight)/2

	if ecs.Has(w, players[0], component.WarpPendingComponent) {
		cam.X, cam.Y = targetX, targetY
		return
	}

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	cam.X = common.Lerp(cam.X, targetX, smooth)
	cam.Y = common.Lerp(cam.Y, targetY, smooth)
}
