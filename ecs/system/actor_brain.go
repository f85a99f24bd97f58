package system

import (
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/prefabs"
)

// ActorBrainSystem runs each actor's movement script on its think cadence.
// The script sees the actor's facing, which neighbouring tiles are blocked,
// a random int, and a persistent state map; it answers by assigning the
// global `move` one of "up", "down", "left", "right" or "".
type ActorBrainSystem struct {
	blocked *BlockedTiles
	rng     *rand.Rand
	logger  *zap.Logger

	cache map[ecs.Entity]*brainRuntime
}

type brainRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
}

func NewActorBrainSystem(blocked *BlockedTiles, seed int64, logger *zap.Logger) *ActorBrainSystem {
	return &ActorBrainSystem{
		blocked: blocked,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
		cache:   make(map[ecs.Entity]*brainRuntime),
	}
}

// Invalidate drops every compiled script so edited scripts recompile on the
// next think tick.
func (s *ActorBrainSystem) Invalidate() {
	if s == nil {
		return
	}
	clear(s.cache)
}

func (s *ActorBrainSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	ecs.ForEach3(w, component.ActorBrainComponent, component.TileMoverComponent, component.WorldGridCoordsComponent, func(e ecs.Entity, brain *component.ActorBrain, mover *component.TileMover, coords *component.WorldGridCoords) {
		brain.Timer++
		if brain.ThinkTicks <= 0 || brain.Timer < brain.ThinkTicks {
			return
		}
		brain.Timer = 0

		rt, err := s.runtime(e, brain.Script)
		if err != nil {
			s.logger.Error("brain: load script", zap.String("script", brain.Script), zap.Error(err))
			return
		}

		mover.Want = s.think(rt, mover.Facing, *coords)
	})

	// Dead actors leave stale runtimes behind.
	for e := range s.cache {
		if !w.IsAlive(e) {
			delete(s.cache, e)
		}
	}
}

func (s *ActorBrainSystem) think(rt *brainRuntime, facing component.Direction, coords component.WorldGridCoords) component.Direction {
	blockedMap := map[string]tengo.Object{}
	for name, d := range map[string]component.Direction{
		"up":    component.DirUp,
		"down":  component.DirDown,
		"left":  component.DirLeft,
		"right": component.DirRight,
	} {
		dx, dy := d.Vec()
		if s.blocked.Blocked(coords.Offset(dx, dy)) {
			blockedMap[name] = tengo.TrueValue
		} else {
			blockedMap[name] = tengo.FalseValue
		}
	}

	_ = rt.compiled.Set("__facing", facing.String())
	_ = rt.compiled.Set("__blocked", &tengo.ImmutableMap{Value: blockedMap})
	_ = rt.compiled.Set("__rand", int64(s.rng.Intn(1000)))
	_ = rt.compiled.Set("__state", rt.stateData)
	_ = rt.compiled.Set("move", "")

	if err := rt.compiled.Run(); err != nil {
		s.logger.Error("brain: run script", zap.String("script", rt.scriptPath), zap.Error(err))
		return component.DirNone
	}

	switch strings.TrimSpace(rt.compiled.Get("move").String()) {
	case "up":
		return component.DirUp
	case "down":
		return component.DirDown
	case "left":
		return component.DirLeft
	case "right":
		return component.DirRight
	}
	return component.DirNone
}

func (s *ActorBrainSystem) runtime(e ecs.Entity, scriptPath string) (*brainRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt != nil && rt.scriptPath == scriptPath {
		return rt, nil
	}

	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("__facing", "")
	_ = script.Add("__blocked", map[string]any{})
	_ = script.Add("__rand", int64(0))
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("move", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &brainRuntime{
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[e] = rt
	return rt, nil
}
