package system

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// DefaultPalette is used when a level authors no palette of its own.
var DefaultPalette = [4]color.RGBA{
	{R: 0x0f, G: 0x38, B: 0x0f, A: 0xff},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xff},
	{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff},
	{R: 0x9b, G: 0xbc, B: 0x0f, A: 0xff},
}

// PaletteSystem swaps the screen palette to the player's current level's
// authored colours on level change.
type PaletteSystem struct {
	project *worlds.Project
	logger  *zap.Logger

	cache map[string][4]color.RGBA
}

func NewPaletteSystem(project *worlds.Project, logger *zap.Logger) *PaletteSystem {
	return &PaletteSystem{project: project, logger: logger, cache: make(map[string][4]color.RGBA)}
}

func (s *PaletteSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	for _, evt := range w.Events().Items() {
		if evt.Type != EventLevelChanged {
			continue
		}
		changed, ok := evt.Data.(LevelChangedEvent)
		if !ok || !ecs.Has(w, changed.Entity, component.PlayerComponent) {
			continue
		}
		s.apply(w, changed.LevelIID)
	}
}

func (s *PaletteSystem) apply(w *ecs.World, levelIID string) {
	e, ok := w.First(component.PaletteComponent.Kind())
	if !ok {
		return
	}
	pal, ok := ecs.Get(w, e, component.PaletteComponent)
	if !ok {
		return
	}
	pal.Colours = s.coloursFor(levelIID)
}

func (s *PaletteSystem) coloursFor(levelIID string) [4]color.RGBA {
	if cached, ok := s.cache[levelIID]; ok {
		return cached
	}

	colours := DefaultPalette
	lvl := s.project.LevelByIID(levelIID)
	if lvl != nil {
		if authored := lvl.Fields.Strings("palette"); len(authored) == 4 {
			for i, hex := range authored {
				c, err := ParseHexColour(hex)
				if err != nil {
					s.logger.Warn("palette: bad colour, keeping default",
						zap.String("level", lvl.Identifier),
						zap.String("colour", hex),
						zap.Error(err))
					colours = DefaultPalette
					break
				}
				colours[i] = c
			}
		}
	}

	s.cache[levelIID] = colours
	return colours
}

// ParseHexColour parses "#rrggbb" into an opaque RGBA.
func ParseHexColour(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
