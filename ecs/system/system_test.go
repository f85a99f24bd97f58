package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// testWorld has two adjacent surface levels and a cellar one depth down.
// Grid origins: a (0,-9), b (10,-9), c (0,-9) at depth -1. The warp pad in a
// sits at world (5,-6,0); its target tgt_c marks (2,-7,-1). The return warp
// in c sits at (3,-7,-1) and targets tgt_a at (6,-4,0).
const testWorld = `{
	"tile_size": 16,
	"levels": [
		{
			"iid": "lvl_a", "identifier": "A",
			"world_x": 0, "world_y": 0, "px_wid": 160, "px_hei": 144, "world_depth": 0,
			"neighbours": ["lvl_b", "lvl_c"],
			"entities": [
				{"iid": "ent_player", "type": "Player", "px": [64, 64], "width": 16, "height": 16},
				{"iid": "warp_a", "type": "Warp", "px": [80, 80], "width": 16, "height": 16,
				 "fields": {"target": {"entity_iid": "tgt_c", "level_iid": "lvl_c"}}},
				{"iid": "tgt_a", "type": "WarpTarget", "px": [96, 48], "width": 16, "height": 16}
			]
		},
		{
			"iid": "lvl_b", "identifier": "B",
			"world_x": 160, "world_y": 0, "px_wid": 160, "px_hei": 144, "world_depth": 0,
			"neighbours": ["lvl_a"]
		},
		{
			"iid": "lvl_c", "identifier": "C",
			"world_x": 0, "world_y": 0, "px_wid": 160, "px_hei": 144, "world_depth": -1,
			"neighbours": ["lvl_a"],
			"entities": [
				{"iid": "tgt_c", "type": "WarpTarget", "px": [32, 96], "width": 16, "height": 16},
				{"iid": "warp_c", "type": "Warp", "px": [48, 96], "width": 16, "height": 16,
				 "fields": {"target": {"entity_iid": "tgt_a", "level_iid": "lvl_a"}}}
			]
		}
	]
}`

func loadTestProject(t *testing.T) *worlds.Project {
	t.Helper()
	p, err := worlds.Parse([]byte(testWorld))
	require.NoError(t, err)
	return p
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

// spawnMover creates a bare grid-locked entity at the given coords.
func spawnMover(w *ecs.World, coords component.WorldGridCoords, stepTicks int) ecs.Entity {
	e := w.CreateEntity()
	px, py := coords.PixelTopLeft()
	c := coords
	_ = ecs.Add(w, e, component.WorldGridCoordsComponent, &c)
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: px, Y: py})
	_ = ecs.Add(w, e, component.TileMoverComponent, &component.TileMover{StepTicks: stepTicks, Facing: component.DirDown, From: c})
	return e
}

// spawnPlayer is spawnMover plus the player tag and level tracking.
func spawnPlayer(w *ecs.World, coords component.WorldGridCoords, levelIID string, stepTicks int) ecs.Entity {
	e := spawnMover(w, coords, stepTicks)
	_ = ecs.Add(w, e, component.PlayerComponent, &component.Player{})
	_ = ecs.Add(w, e, component.CurrentLevelComponent, &component.CurrentLevel{LevelIID: levelIID})
	return e
}

func setWant(t *testing.T, w *ecs.World, e ecs.Entity, d component.Direction) {
	t.Helper()
	mover, ok := ecs.Get(w, e, component.TileMoverComponent)
	require.True(t, ok)
	mover.Want = d
}

func moverAt(t *testing.T, w *ecs.World, e ecs.Entity) (*component.TileMover, *component.WorldGridCoords, *component.Transform) {
	t.Helper()
	mover, ok := ecs.Get(w, e, component.TileMoverComponent)
	require.True(t, ok)
	coords, ok := ecs.Get(w, e, component.WorldGridCoordsComponent)
	require.True(t, ok)
	tf, ok := ecs.Get(w, e, component.TransformComponent)
	require.True(t, ok)
	return mover, coords, tf
}

// eventRecorder copies each tick's events before the scheduler flushes them.
type eventRecorder struct {
	events []ecs.Event
}

func (r *eventRecorder) Update(w *ecs.World) {
	r.events = append(r.events, w.Events().Items()...)
}

func (r *eventRecorder) ofType(eventType string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range r.events {
		if evt.Type == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// memberSpawner is a SpawnFunc that creates one marker entity per level so
// streaming tests can watch teardown without touching assets.
type memberSpawner struct {
	spawned []string
	members map[string]ecs.Entity
}

func newMemberSpawner() *memberSpawner {
	return &memberSpawner{members: make(map[string]ecs.Entity)}
}

func (m *memberSpawner) spawn(w *ecs.World, lvl *worlds.Level) error {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.LevelMemberComponent, &component.LevelMember{LevelIID: lvl.IID})
	m.spawned = append(m.spawned, lvl.IID)
	m.members[lvl.IID] = e
	return nil
}
