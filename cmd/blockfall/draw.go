package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

func rgba(c [3]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

var gridColor = color.RGBA{40, 40, 52, 255}

func drawBoard(screen *ebiten.Image, s tetris.Snapshot) {
	const size = float32(tetris.CellSize)

	vector.DrawFilledRect(screen, 0, 0, tetris.DisplayWidth, tetris.DisplayHeight, rgba(ui.Background), false)
	for r, row := range s.Composite() {
		for c, kind := range row {
			x, y := float32(c)*size, float32(r)*size
			if kind == tetris.Empty {
				vector.StrokeRect(screen, x, y, size, size, 1, gridColor, false)
				continue
			}
			vector.DrawFilledRect(screen, x, y, size, size, rgba(ui.KindColor(kind)), false)
			vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
		}
	}
}

func drawPanel(screen *ebiten.Image, elapsed string, state tetris.State) {
	x := tetris.DisplayWidth + 12
	if elapsed == "" {
		elapsed = ui.FormatElapsed(0)
	}
	ebitenutil.DebugPrintAt(screen, "TIME "+elapsed, x, 12)

	switch state {
	case tetris.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", x, 36)
	case tetris.Uninitialized:
		ebitenutil.DebugPrintAt(screen, "PRESS S", x, 36)
	}

	for i, line := range ui.Help(ui.DefaultBindings) {
		ebitenutil.DebugPrintAt(screen, line, x, 72+i*16)
	}
}
