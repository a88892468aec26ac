package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/clock"
)

const frameHistorySize = 120

// PerformanceStats plots frame times and lists the scheduler's sources.
type PerformanceStats struct {
	scheduler *clock.Scheduler
	timer     *FrameTimer
	frames    *History
}

func NewPerformanceStats(scheduler *clock.Scheduler) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		timer:     NewFrameTimer(),
		frames:    NewHistory(frameHistorySize),
	}
}

func (ps *PerformanceStats) Item() Item {
	return Item{Render: ps.Render}
}

func (ps *PerformanceStats) Render() {
	ps.frames.Push(ps.timer.GetDeltaTime() * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.frames.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	stats := ps.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Sources: %d (%d active)", stats.SourceCount, stats.ActiveCount))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

	if imgui.TreeNodeStr("Source Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SourceTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Active")
			imgui.TableSetupColumn("Gen")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, src := range stats.Sources {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(src.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%t", src.Active))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", src.Generation))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", src.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(src.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(src.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
