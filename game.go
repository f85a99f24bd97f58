package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/ecs/system"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/worlds"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.Renderer
	brains    *system.ActorBrainSystem

	paused bool
	ui     *ebitenui.UI

	watcher *prefabs.Watcher
	logger  *zap.Logger
}

func NewGame(worldName string, seed int64, watch bool, logger *zap.Logger) (*Game, error) {
	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	actorSpec, err := prefabs.LoadActorSpec()
	if err != nil {
		return nil, err
	}

	if worldName == "" {
		worldName = gameSpec.World
	}
	project, err := worlds.LoadEmbedded(worldName)
	if err != nil {
		return nil, err
	}
	for _, problem := range project.Validate() {
		logger.Warn("world check", zap.String("problem", problem.String()))
	}

	w := ecs.NewWorld()

	residency := system.NewResidency()
	blocked := system.NewBlockedTiles()
	neighbours := system.BuildNeighbourCache(project)
	warpIndex := system.BuildWarpIndex(project)

	entity.NewCamera(w, 0.15)
	entity.NewScreenFade(w)
	entity.NewPalette(w)

	placements := project.TOC("Player")
	if len(placements) == 0 {
		return nil, fmt.Errorf("world %s has no player placement", worldName)
	}
	player, err := entity.NewPlayer(w, playerSpec, placements[0])
	if err != nil {
		return nil, err
	}

	spawn := func(w *ecs.World, lvl *worlds.Level) error {
		return entity.SpawnLevel(w, lvl, actorSpec)
	}

	brains := system.NewActorBrainSystem(blocked, seed, logger.Named("brain"))
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		brains,
		system.NewGridResolveSystem(project, logger.Named("resolve")),
		system.NewBlockedTilesSystem(project, residency, blocked),
		system.NewLevelTrackerSystem(project, residency, logger.Named("tracker")),
		system.NewLevelStreamingSystem(neighbours, residency),
		system.NewLevelSpawnerSystem(project, residency, spawn, logger.Named("spawner")),
		system.NewMovementSystem(blocked),
		system.NewWarpSystem(warpIndex, residency, gameSpec.FadeTicks, logger.Named("warp")),
		system.NewWalkAnimSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(),
		system.NewPaletteSystem(project, logger.Named("palette")),
		system.NewMusicSystem(project, logger.Named("music")),
	)

	// Seed the first tick so the palette and music pick up the start level.
	startLevel := placements[0].Level()
	w.Events().Push(ecs.Event{Type: system.EventLevelChanged, Data: system.LevelChangedEvent{
		Entity:   player,
		LevelIID: startLevel.IID,
	}})

	g := &Game{
		world:     w,
		scheduler: scheduler,
		renderer:  system.NewRenderer(project, residency, warpIndex),
		brains:    brains,
		logger:    logger,
	}
	g.ui = NewPauseUI(g)

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logger.Warn("prefab watcher unavailable", zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	g.pollWatcher()

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("prefab changed, recompiling scripts", zap.String("path", path))
			g.brains.Invalidate()
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("prefab watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

// muteMusic queues a stop request through the normal music path.
func (g *Game) muteMusic() {
	entity.NewMusicRequest(g.world, "")
}
