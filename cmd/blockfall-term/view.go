package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

const (
	// Each board cell is two terminal columns wide so cells look square.
	cellWidth = 2
	originX   = 1
	originY   = 1
	panelX    = originX + tetris.Cols*cellWidth + 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func colorOf(c [3]uint8) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

// View draws the board and side panel onto a tcell screen. It is both the
// renderer and the timer display of the controller.
type View struct {
	screen  tcell.Screen
	frame   tetris.Snapshot
	state   tetris.State
	elapsed string
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen, elapsed: ui.FormatElapsed(0)}
}

func (v *View) Render(s tetris.Snapshot) {
	v.frame = s
	v.state = s.State
	v.Redraw()
}

func (v *View) ShowElapsed(d time.Duration) {
	v.elapsed = ui.FormatElapsed(d)
	v.Redraw()
}

// SetState updates the status line; frames stop while paused so Render
// does not see the change.
func (v *View) SetState(s tetris.State) {
	if v.state != s {
		v.state = s
		v.Redraw()
	}
}

func (v *View) Redraw() {
	v.screen.Clear()
	v.drawBorder()
	v.drawBoard()
	v.drawPanel()
	v.screen.Show()
}

func (v *View) drawBorder() {
	right := originX + tetris.Cols*cellWidth
	bottom := originY + tetris.Rows
	for y := originY - 1; y <= bottom; y++ {
		v.screen.SetContent(originX-1, y, '│', nil, borderStyle)
		v.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX - 1; x <= right; x++ {
		v.screen.SetContent(x, originY-1, '─', nil, borderStyle)
		v.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	v.screen.SetContent(originX-1, originY-1, '┌', nil, borderStyle)
	v.screen.SetContent(right, originY-1, '┐', nil, borderStyle)
	v.screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	v.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (v *View) drawBoard() {
	for r, row := range v.frame.Composite() {
		for c, kind := range row {
			style := tcell.StyleDefault.Background(colorOf(ui.KindColor(kind)))
			ch := ' '
			if kind == tetris.Empty {
				ch = '·'
				style = style.Foreground(tcell.ColorDarkGray)
			}
			x := originX + c*cellWidth
			v.screen.SetContent(x, originY+r, ch, nil, style)
			v.screen.SetContent(x+1, originY+r, ' ', nil, style)
		}
	}
}

func (v *View) drawPanel() {
	v.drawText(panelX, originY, "TIME "+v.elapsed, textStyle)
	switch v.state {
	case tetris.Paused:
		v.drawText(panelX, originY+2, "PAUSED", pausedStyle)
	case tetris.Uninitialized:
		v.drawText(panelX, originY+2, "Press S to start", pausedStyle)
	}
	for i, line := range ui.Help(ui.DefaultBindings) {
		v.drawText(panelX, originY+4+i, line, textStyle)
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
