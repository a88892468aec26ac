package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	frames  []tetris.Snapshot
	elapsed []time.Duration
}

func (r *recorder) Render(s tetris.Snapshot) {
	r.frames = append(r.frames, s)
}

func (r *recorder) ShowElapsed(d time.Duration) {
	r.elapsed = append(r.elapsed, d)
}

type harness struct {
	clk        *clock.Manual
	scheduler  *clock.Scheduler
	controller *tetris.Controller
	out        *recorder
}

func newHarness(kinds ...tetris.Kind) *harness {
	clk := clock.NewManual(epoch)
	scheduler := clock.NewScheduler(clk)
	out := &recorder{}
	game := tetris.NewGame(tetris.WithRand(sequence(kinds...)))
	return &harness{
		clk:        clk,
		scheduler:  scheduler,
		controller: tetris.NewController(game, scheduler, out, out),
		out:        out,
	}
}

// frames advances the clock in 10ms steps, running the scheduler after each.
func (h *harness) frames(n int) {
	for range n {
		h.clk.Advance(10 * time.Millisecond)
		h.scheduler.Advance()
	}
}

func (h *harness) sourceStats(name string) clock.SourceStats {
	for _, s := range h.scheduler.GetStats().Sources {
		if s.Name == name {
			return s
		}
	}
	return clock.SourceStats{}
}

func TestControllerStart(t *testing.T) {
	h := newHarness(tetris.KindT)
	game := h.controller.Game()

	assert.False(t, h.controller.FrameActive())
	h.controller.Start()

	assert.Equal(t, tetris.Running, game.State())
	assert.True(t, h.controller.FrameActive())
	assert.True(t, h.controller.DisplayActive())
	assert.Equal(t, []time.Duration{0}, h.out.elapsed, "the display is refreshed as soon as a run starts")

	// Start on a running game changes nothing.
	h.controller.Start()
	assert.Equal(t, int64(1), h.sourceStats("frame").Starts)
	assert.Equal(t, int64(1), game.Stats().Restarts)
}

func TestControllerFrames(t *testing.T) {
	h := newHarness(tetris.KindT)
	h.controller.Start()

	h.frames(100)
	assert.Len(t, h.out.frames, 100, "one render per scheduled frame")
	assert.Len(t, h.out.elapsed, 2, "initial refresh plus one per second")
	assert.Equal(t, time.Second, h.out.elapsed[1])

	// 1s of frames: gravity fired once the interval was strictly exceeded.
	last := h.out.frames[len(h.out.frames)-1]
	assert.Equal(t, 1, last.Piece.Position.Y)
	assert.Equal(t, tetris.Running, last.State)
}

func TestControllerDisplayShowsEverySecond(t *testing.T) {
	h := newHarness(tetris.KindT)
	h.controller.Start()

	// 60 Hz frames for just over a minute of play.
	for range 3601 {
		h.clk.Advance(time.Second / 60)
		h.scheduler.Advance()
	}

	shown := make([]string, 0, len(h.out.elapsed))
	for _, d := range h.out.elapsed {
		shown = append(shown, ui.FormatElapsed(d))
	}

	want := make([]string, 0, 61)
	for sec := range 61 {
		want = append(want, ui.FormatElapsed(time.Duration(sec)*time.Second))
	}
	assert.Equal(t, want, shown)
	assert.Zero(t, h.controller.Game().Stats().Resets)
}

func TestControllerStopIsIdempotent(t *testing.T) {
	h := newHarness(tetris.KindT)
	h.controller.Start()
	h.frames(10)

	h.controller.Stop()
	once := h.controller.Game().Snapshot()
	frameCancels := h.sourceStats("frame").Cancels
	displayCancels := h.sourceStats("display").Cancels

	h.controller.Stop()
	twice := h.controller.Game().Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, tetris.Paused, twice.State)
	assert.Equal(t, frameCancels, h.sourceStats("frame").Cancels)
	assert.Equal(t, displayCancels, h.sourceStats("display").Cancels)
	assert.False(t, h.controller.FrameActive())
	assert.False(t, h.controller.DisplayActive())

	rendered := len(h.out.frames)
	refreshed := len(h.out.elapsed)
	h.frames(300)
	assert.Len(t, h.out.frames, rendered, "no frames while paused")
	assert.Len(t, h.out.elapsed, refreshed, "no display refresh while paused")
}

func TestControllerResume(t *testing.T) {
	h := newHarness(tetris.KindT)
	h.controller.Start()
	h.controller.Stop()
	h.frames(50)

	h.controller.Start()
	assert.Equal(t, tetris.Running, h.controller.Game().State())
	assert.True(t, h.controller.FrameActive())
	assert.True(t, h.controller.DisplayActive())

	// The paused half second was not compensated, so gravity fires on the
	// first frame after resuming.
	h.frames(1)
	require.Len(t, h.out.frames, 1)
	assert.Equal(t, 1, h.out.frames[0].Piece.Position.Y)

	// Resuming twice must not leave two display timers behind.
	h.controller.Resume()
	before := len(h.out.elapsed)
	h.frames(100)
	assert.Len(t, h.out.elapsed, before+1)
	assert.Equal(t, 2, h.scheduler.GetStats().ActiveCount)
}

func TestControllerRestart(t *testing.T) {
	h := newHarness(tetris.KindO)
	h.controller.Start()
	h.frames(200)

	game := h.controller.Game()
	game.Board().Set(10, 0, tetris.KindZ)

	h.controller.Restart()

	assert.Equal(t, tetris.Running, game.State())
	assert.Equal(t, tetris.Empty, game.Board().At(10, 0))
	assert.Equal(t, tetris.Position{X: 4, Y: 0}, game.Piece().Position)
	assert.Equal(t, int64(2), game.Stats().Restarts)
	assert.Equal(t, time.Duration(0), h.out.elapsed[len(h.out.elapsed)-1])

	stats := h.scheduler.GetStats()
	assert.Equal(t, 2, stats.ActiveCount)
	assert.Equal(t, uint64(2), h.sourceStats("frame").Generation)
	assert.Equal(t, uint64(2), h.sourceStats("display").Generation)
}

func TestControllerGameOverRestartsDisplay(t *testing.T) {
	h := newHarness(tetris.KindO)
	h.controller.Start()
	h.frames(150)

	game := h.controller.Game()
	require.Equal(t, 2, game.Piece().Position.Y)

	// Lock the piece where it is and block the spawn point.
	game.Board().Set(game.Piece().Position.Y+2, 4, tetris.KindJ)
	game.Board().Set(0, 5, tetris.KindJ)
	h.controller.SoftDrop()

	assert.Equal(t, int64(1), game.Stats().Resets)
	assert.Equal(t, tetris.Empty, game.Board().At(0, 5))
	assert.Equal(t, time.Duration(0), h.out.elapsed[len(h.out.elapsed)-1])
	assert.Equal(t, uint64(2), h.sourceStats("display").Generation)
	assert.True(t, h.controller.FrameActive())
}

func TestControllerInputs(t *testing.T) {
	h := newHarness(tetris.KindT)
	game := h.controller.Game()

	// No run yet: inputs are ignored.
	h.controller.MoveLeft()
	h.controller.SoftDrop()
	assert.Nil(t, game.Board())

	h.controller.Start()
	h.controller.MoveLeft()
	assert.Equal(t, 3, game.Piece().Position.X)
	h.controller.MoveRight()
	h.controller.MoveRight()
	assert.Equal(t, 5, game.Piece().Position.X)
	h.controller.Rotate()
	assert.Equal(t, 3, game.Piece().Shape.Rows())
	h.controller.SoftDrop()
	assert.Equal(t, 1, game.Piece().Position.Y)

	h.controller.Stop()
	h.controller.MoveLeft()
	h.controller.SoftDrop()
	assert.Equal(t, tetris.Position{X: 4, Y: 2}, game.Piece().Position, "inputs still act while paused")
	assert.Empty(t, h.out.frames, "inputs do not render by themselves")
}
