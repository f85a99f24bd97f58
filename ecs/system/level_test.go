package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

func TestNeighbourCacheFiltersCrossDepth(t *testing.T) {
	cache := BuildNeighbourCache(loadTestProject(t))

	// lvl_a authors lvl_c as a neighbour, but lvl_c is one depth down.
	assert.Equal(t, []string{"lvl_b"}, cache.Neighbours("lvl_a"))
	assert.Equal(t, []string{"lvl_a"}, cache.Neighbours("lvl_b"))
	assert.Empty(t, cache.Neighbours("lvl_c"))
}

type levelRig struct {
	w         *ecs.World
	scheduler *ecs.Scheduler
	residency *Residency
	spawner   *memberSpawner
	recorder  *eventRecorder
}

func newLevelRig(t *testing.T) *levelRig {
	t.Helper()
	project := loadTestProject(t)
	rig := &levelRig{
		w:         ecs.NewWorld(),
		residency: NewResidency(),
		spawner:   newMemberSpawner(),
		recorder:  &eventRecorder{},
	}
	rig.scheduler = ecs.NewScheduler(
		NewLevelTrackerSystem(project, rig.residency, nopLogger()),
		NewLevelStreamingSystem(BuildNeighbourCache(project), rig.residency),
		NewLevelSpawnerSystem(project, rig.residency, rig.spawner.spawn, nopLogger()),
		rig.recorder,
	)
	return rig
}

func (r *levelRig) tick(n int) {
	for i := 0; i < n; i++ {
		r.scheduler.Update(r.w)
	}
}

func TestStreamingLoadsCurrentAndNeighboursOnePerTick(t *testing.T) {
	rig := newLevelRig(t)
	spawnPlayer(rig.w, component.WorldGridCoords{X: 4, Y: -6}, "lvl_a", 4)

	rig.tick(1)
	assert.Equal(t, []string{"lvl_a"}, rig.residency.Resident(), "one level per tick")

	rig.tick(1)
	assert.Equal(t, []string{"lvl_a", "lvl_b"}, rig.residency.Resident())

	rig.tick(1)
	assert.Equal(t, []string{"lvl_a", "lvl_b"}, rig.spawner.spawned, "no respawn once resident")
	assert.Empty(t, rig.recorder.ofType(EventLevelChanged), "no change while standing still")
}

func TestTrackerEmitsChangeAndLoadedWhenDestinationResident(t *testing.T) {
	rig := newLevelRig(t)
	player := spawnPlayer(rig.w, component.WorldGridCoords{X: 4, Y: -6}, "lvl_a", 4)
	rig.tick(2) // a and b resident

	// Step over the seam into b.
	_, coords, _ := moverAt(t, rig.w, player)
	coords.X = 10
	rig.tick(1)

	changed := rig.recorder.ofType(EventLevelChanged)
	require.Len(t, changed, 1)
	data := changed[0].Data.(LevelChangedEvent)
	assert.Equal(t, "lvl_b", data.LevelIID)
	assert.Equal(t, "lvl_a", data.PrevIID)

	loaded := rig.recorder.ofType(EventLevelChangedAndLoaded)
	require.Len(t, loaded, 1, "destination already resident, loaded fires same tick")
	assert.Equal(t, "lvl_b", loaded[0].Data.(LevelChangedAndLoadedEvent).LevelIID)

	cur, ok := ecs.Get(rig.w, player, component.CurrentLevelComponent)
	require.True(t, ok)
	assert.Equal(t, "lvl_b", cur.LevelIID)
	assert.False(t, ecs.Has(rig.w, player, component.CurrentLevelLoadingComponent))
}

func TestTrackerDefersLoadedUntilLevelSpawns(t *testing.T) {
	rig := newLevelRig(t)
	player := spawnPlayer(rig.w, component.WorldGridCoords{X: 4, Y: -6}, "lvl_a", 4)
	rig.tick(1) // only a resident

	_, coords, _ := moverAt(t, rig.w, player)
	coords.X = 10

	// Tick: change detected, b not resident yet. The spawner loads b later
	// this same tick, but the loaded event must wait for the next one.
	rig.tick(1)
	require.Len(t, rig.recorder.ofType(EventLevelChanged), 1)
	assert.Empty(t, rig.recorder.ofType(EventLevelChangedAndLoaded))
	assert.True(t, ecs.Has(rig.w, player, component.CurrentLevelLoadingComponent))
	assert.True(t, rig.residency.IsResident("lvl_b"))

	rig.tick(1)
	loaded := rig.recorder.ofType(EventLevelChangedAndLoaded)
	require.Len(t, loaded, 1)
	assert.Equal(t, "lvl_b", loaded[0].Data.(LevelChangedAndLoadedEvent).LevelIID)
	assert.False(t, ecs.Has(rig.w, player, component.CurrentLevelLoadingComponent))
}

func TestStreamingUnloadsStaleLevels(t *testing.T) {
	rig := newLevelRig(t)
	player := spawnPlayer(rig.w, component.WorldGridCoords{X: 4, Y: -6}, "lvl_a", 4)
	rig.tick(2)
	require.Equal(t, []string{"lvl_a", "lvl_b"}, rig.residency.Resident())

	memberA := rig.spawner.members["lvl_a"]
	memberB := rig.spawner.members["lvl_b"]

	// Drop into the cellar: its target set is just itself, since its only
	// authored neighbour is on the surface.
	_, coords, _ := moverAt(t, rig.w, player)
	*coords = component.WorldGridCoords{X: 2, Y: -7, Z: -1}
	rig.tick(1)

	assert.Equal(t, []string{"lvl_c"}, rig.residency.Resident())
	assert.False(t, rig.w.IsAlive(memberA), "stale level content torn down")
	assert.False(t, rig.w.IsAlive(memberB))
	assert.True(t, rig.w.IsAlive(player), "the player is not level-owned")
}

func TestTrackerFirstMatchWinsOnOverlap(t *testing.T) {
	// lvl_a and lvl_c occupy the same x/y bounds on different depths;
	// membership must follow the entity's depth, not file order.
	project := loadTestProject(t)
	tracker := NewLevelTrackerSystem(project, NewResidency(), nopLogger())

	assert.Equal(t, "lvl_a", tracker.levelAt(component.WorldGridCoords{X: 2, Y: -7, Z: 0}).IID)
	assert.Equal(t, "lvl_c", tracker.levelAt(component.WorldGridCoords{X: 2, Y: -7, Z: -1}).IID)
	assert.Nil(t, tracker.levelAt(component.WorldGridCoords{X: 100, Y: 100, Z: 0}))
}
