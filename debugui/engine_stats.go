package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

// EngineStats shows the game's lifecycle state and counters.
func EngineStats(game *tetris.Game) Item {
	return Item{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 240), imgui.CondOnce)

			if imgui.BeginV("Engine Stats", nil, 0) {
				stats := game.Stats()
				piece := game.Piece()

				imgui.Text(fmt.Sprintf("State: %s", game.State()))
				imgui.Text(fmt.Sprintf("Elapsed: %s", ui.FormatElapsed(game.Elapsed())))
				imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d)", piece.Shape.Kind(), piece.Position.X, piece.Position.Y))
				imgui.Separator()
				imgui.Text(fmt.Sprintf("Spawns: %d", stats.Spawns))
				imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
				imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))
				imgui.Text(fmt.Sprintf("Resets: %d", stats.Resets))
				imgui.Text(fmt.Sprintf("Restarts: %d", stats.Restarts))

				if imgui.TreeNodeStr("Clears By Size") {
					for n := 1; n < len(stats.ClearsBySize); n++ {
						imgui.BulletText(fmt.Sprintf("%d rows: %d", n, stats.ClearsBySize[n]))
					}
					imgui.TreePop()
				}
			}
			imgui.End()
		},
	}
}
