package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
)

// Controls shows Pause/Resume and Restart buttons for a controller. Button
// presses go through ui.Apply like key presses do.
func Controls(c *tetris.Controller) Item {
	return Item{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 530), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 120), imgui.CondOnce)

			if imgui.BeginV("Game Control", nil, 0) {
				switch c.Game().State() {
				case tetris.Running:
					if imgui.Button("Pause") {
						ui.Apply(c, ui.Stop)
					}
				default:
					imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
					imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
					if imgui.Button("Start") {
						ui.Apply(c, ui.Start)
					}
					imgui.PopStyleColor()
					imgui.PopStyleColor()
				}

				imgui.SameLine()
				if imgui.Button("Restart") {
					ui.Apply(c, ui.Restart)
				}

				if c.Game().State() == tetris.Paused {
					imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
				}
				imgui.Text("frame source: " + activeLabel(c.FrameActive()))
				imgui.Text("display source: " + activeLabel(c.DisplayActive()))
			}
			imgui.End()
		},
	}
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "cancelled"
}
