package main

import (
	"flag"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

const (
	offsetX      = 20
	offsetY      = 20
	panelWidth   = 200
	screenWidth  = offsetX*2 + tetris.DisplayWidth + panelWidth
	screenHeight = offsetY*2 + tetris.DisplayHeight
)

var keyActions = []struct {
	key    int32
	action ui.Action
}{
	{rl.KeyLeft, ui.MoveLeft},
	{rl.KeyRight, ui.MoveRight},
	{rl.KeyDown, ui.SoftDrop},
	{rl.KeyUp, ui.Rotate},
	{rl.KeyS, ui.Start},
	{rl.KeyP, ui.Stop},
	{rl.KeyR, ui.Restart},
	{rl.KeyEscape, ui.Quit},
}

// screen is the controller's renderer and timer display.
type screen struct {
	frame   tetris.Snapshot
	elapsed string
}

func (s *screen) Render(snap tetris.Snapshot) {
	s.frame = snap
}

func (s *screen) ShowElapsed(d time.Duration) {
	s.elapsed = ui.FormatElapsed(d)
}

func color(c [3]uint8) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], 255)
}

func (s *screen) draw(state tetris.State) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangleLines(offsetX-2, offsetY-2, tetris.DisplayWidth+4, tetris.DisplayHeight+4, rl.Gray)
	for r, row := range s.frame.Composite() {
		for c, kind := range row {
			x := int32(offsetX + c*tetris.CellSize)
			y := int32(offsetY + r*tetris.CellSize)
			if kind == tetris.Empty {
				rl.DrawRectangle(x, y, tetris.CellSize, tetris.CellSize, color(ui.Background))
				continue
			}
			rl.DrawRectangle(x, y, tetris.CellSize, tetris.CellSize, color(ui.KindColor(kind)))
			rl.DrawRectangleLines(x, y, tetris.CellSize, tetris.CellSize, rl.Black)
		}
	}

	textX := int32(offsetX + tetris.DisplayWidth + 20)
	rl.DrawText("TIME", textX, offsetY, 20, rl.White)
	rl.DrawText(s.elapsed, textX, offsetY+25, 20, rl.White)

	switch state {
	case tetris.Paused:
		rl.DrawText("PAUSED", textX, offsetY+70, 20, rl.Yellow)
	case tetris.Uninitialized:
		rl.DrawText("Press S to start", textX, offsetY+70, 20, rl.Yellow)
	}

	for i, line := range ui.Help(ui.DefaultBindings) {
		rl.DrawText(line, textX, int32(offsetY+120+i*20), 16, rl.LightGray)
	}

	rl.EndDrawing()
}

func main() {
	cfg := config.Load()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	cfg.Validate()

	logger := log.New(os.Stderr, "blockfall-raylib: ", log.LstdFlags)

	rl.InitWindow(screenWidth, screenHeight, "blockfall")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	view := &screen{elapsed: ui.FormatElapsed(0)}
	scheduler := clock.NewScheduler(clock.System{})
	controller := tetris.NewController(tetris.NewGame(tetris.WithLogger(logger)), scheduler, view, view)
	controller.Start()

Loop:
	for !rl.WindowShouldClose() {
		for _, ka := range keyActions {
			if !rl.IsKeyPressed(ka.key) {
				continue
			}
			if ka.action == ui.Quit {
				break Loop
			}
			ui.Apply(controller, ka.action)
		}

		scheduler.Advance()
		view.draw(controller.Game().State())
	}

	logger.Printf("quit after %s", controller.Game().Elapsed().Truncate(time.Second))
}
