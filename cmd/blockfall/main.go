package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

const (
	panelWidth   = 160
	screenWidth  = tetris.DisplayWidth + panelWidth
	screenHeight = tetris.DisplayHeight
)

func main() {
	cfg := config.Load()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	logger := log.New(os.Stderr, "blockfall: ", log.LstdFlags)

	scheduler := clock.NewScheduler(clock.System{})
	game := &Game{}
	engine := tetris.NewGame(tetris.WithLogger(logger))
	game.controller = tetris.NewController(engine, scheduler, game, game)

	width, height := screenWidth*cfg.Scale, screenHeight*cfg.Scale
	if cfg.Debug {
		backend := debugui_ebiten.NewImguiBackend("blockfall (debug)", width+400, height)
		overlay := debugui.NewOverlay(
			debugui.NewPerformanceStats(scheduler).Item(),
			debugui.EngineStats(engine),
			debugui.Controls(game.controller),
		)
		game.debug = debugui_ebiten.NewLayer(backend, overlay)
		logger.Println("debug overlay enabled")
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game.controller.Start()
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalf("run: %v", err)
	}
	logger.Printf("quit after %s", engine.Elapsed().Truncate(time.Second))
}
