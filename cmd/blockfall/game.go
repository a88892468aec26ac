package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

var keyActions = []struct {
	key    ebiten.Key
	action ui.Action
}{
	{ebiten.KeyArrowLeft, ui.MoveLeft},
	{ebiten.KeyArrowRight, ui.MoveRight},
	{ebiten.KeyArrowDown, ui.SoftDrop},
	{ebiten.KeyArrowUp, ui.Rotate},
	{ebiten.KeyS, ui.Start},
	{ebiten.KeyP, ui.Stop},
	{ebiten.KeyR, ui.Restart},
	{ebiten.KeyEscape, ui.Quit},
}

// Game adapts the controller to ebiten. It is also the controller's
// renderer and timer display: both just record what Draw should show.
type Game struct {
	controller *tetris.Controller
	debug      *debugui_ebiten.Layer

	frame   tetris.Snapshot
	elapsed string
}

func (g *Game) Render(s tetris.Snapshot) {
	g.frame = s
}

func (g *Game) ShowElapsed(d time.Duration) {
	g.elapsed = ui.FormatElapsed(d)
}

func (g *Game) Update() error {
	if g.debug != nil {
		g.debug.Update()
	}

	if g.debug == nil || !g.debug.WantsKeyboard() {
		for _, ka := range keyActions {
			if !inpututil.IsKeyJustPressed(ka.key) {
				continue
			}
			if ka.action == ui.Quit {
				return ebiten.Termination
			}
			ui.Apply(g.controller, ka.action)
		}
	}

	g.controller.Scheduler().Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.frame)
	drawPanel(screen, g.elapsed, g.controller.Game().State())

	if g.debug != nil {
		g.debug.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug != nil {
		g.debug.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
