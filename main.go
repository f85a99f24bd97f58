package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/prefabs"
)

func main() {
	worldName := flag.String("world", "", "world file in worlds/ (basename, .json optional)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "actor brain random seed")
	watch := flag.Bool("watch", false, "reload prefab specs and scripts on change")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	gameSpec, err := prefabs.LoadGameSpec()
	if err != nil {
		logger.Fatal("load game spec", zap.Error(err))
	}
	scale := gameSpec.Scale
	if scale <= 0 {
		scale = 4
	}

	ebiten.SetWindowSize(common.BaseWidth*scale, common.BaseHeight*scale)
	ebiten.SetWindowTitle(gameSpec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(*worldName, *seed, *watch, logger)
	if err != nil {
		logger.Fatal("game init", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
