package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// Renderer draws the resident world and every sprite on the player's depth.
// It is not a scheduler system; the game calls Draw from Ebiten's draw
// callback so logic stays on the fixed tick.
type Renderer struct {
	project   *worlds.Project
	residency *Residency
	index     *WarpIndex
}

func NewRenderer(project *worlds.Project, residency *Residency, index *WarpIndex) *Renderer {
	return &Renderer{project: project, residency: residency, index: index}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	colours := DefaultPalette
	if e, ok := w.First(component.PaletteComponent.Kind()); ok {
		if pal, ok := ecs.Get(w, e, component.PaletteComponent); ok {
			colours = pal.Colours
		}
	}
	screen.Fill(colours[3])

	var camX, camY float64
	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent); ok {
			camX, camY = math.Round(cam.X), math.Round(cam.Y)
		}
	}

	depth := 0
	if players := w.Query(component.PlayerComponent.Kind(), component.WorldGridCoordsComponent.Kind()); len(players) > 0 {
		if coords, ok := ecs.Get(w, players[0], component.WorldGridCoordsComponent); ok {
			depth = coords.Z
		}
	}

	r.drawLevels(screen, colours, camX, camY, depth)
	r.drawWarpPads(screen, camX, camY, depth)
	r.drawSprites(w, screen, camX, camY, depth)
	r.drawDarkness(w, screen)
}

func (r *Renderer) drawLevels(screen *ebiten.Image, colours [4]color.RGBA, camX, camY float64, depth int) {
	for _, iid := range r.residency.Resident() {
		lvl := r.project.LevelByIID(iid)
		if lvl == nil || lvl.WorldDepth != depth {
			continue
		}
		for ly := 0; ly < lvl.GridHeight(); ly++ {
			for lx := 0; lx < lvl.GridWidth(); lx++ {
				if !lvl.BlockedAt(lx, ly) {
					continue
				}
				ox, oy := lvl.GridOrigin()
				c := component.WorldGridCoords{X: ox + lx, Y: oy + ly, Z: depth}
				px, py := c.PixelTopLeft()

				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(px-camX, py-camY)
				op.ColorScale.ScaleWithColor(colours[1])
				screen.DrawImage(assets.Tile, op)
			}
		}
	}
}

func (r *Renderer) drawWarpPads(screen *ebiten.Image, camX, camY float64, depth int) {
	for c := range r.index.Tiles {
		if c.Z != depth {
			continue
		}
		px, py := c.PixelTopLeft()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px-camX, py-camY)
		screen.DrawImage(assets.Warp, op)
	}
}

func (r *Renderer) drawSprites(w *ecs.World, screen *ebiten.Image, camX, camY float64, depth int) {
	ecs.ForEach2(w, component.SpriteComponent, component.TransformComponent, func(e ecs.Entity, sprite *component.Sprite, tf *component.Transform) {
		if sprite.Image == nil {
			return
		}
		if coords, ok := ecs.Get(w, e, component.WorldGridCoordsComponent); ok && coords.Z != depth {
			return
		}

		img := sprite.Image
		if sprite.UseSource {
			img = sprite.Image.SubImage(sprite.Source).(*ebiten.Image)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(tf.X-camX, tf.Y-camY)
		screen.DrawImage(img, op)
	})
}

// drawDarkness overlays the warp fade, quantized to four alpha steps for
// the stepped fade look.
func (r *Renderer) drawDarkness(w *ecs.World, screen *ebiten.Image) {
	e, ok := w.First(component.ScreenFadeComponent.Kind())
	if !ok {
		return
	}
	fade, ok := ecs.Get(w, e, component.ScreenFadeComponent)
	if !ok || fade.Darkness <= 0 {
		return
	}

	steps := math.Ceil(fade.Darkness*4) / 4
	if steps > 1 {
		steps = 1
	}
	alpha := uint8(steps * 255)
	vector.DrawFilledRect(screen, 0, 0, float32(common.BaseWidth), float32(common.BaseHeight), color.RGBA{A: alpha}, false)
}
