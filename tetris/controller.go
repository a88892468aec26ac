package tetris

import (
	"time"

	"github.com/plus3/blockfall/clock"
)

// Renderer paints a frame. It is called once per scheduled frame while the
// game is running.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

// TimerDisplay shows the elapsed run time.
type TimerDisplay interface {
	ShowElapsed(time.Duration)
}

// TimerDisplayFunc adapts a function to TimerDisplay.
type TimerDisplayFunc func(time.Duration)

func (f TimerDisplayFunc) ShowElapsed(d time.Duration) { f(d) }

// Controller runs a Game on a scheduler. It owns two sources: a frame
// source that ticks gravity and renders on every advance, and a display
// source that refreshes the elapsed time once per DisplayRefresh.
//
// All methods must be called from the goroutine that advances the
// scheduler.
type Controller struct {
	game      *Game
	scheduler *clock.Scheduler
	renderer  Renderer
	display   TimerDisplay

	frameID   clock.SourceID
	displayID clock.SourceID
	// Handles of the current activations; stale once cancelled or replaced.
	frameHandle   clock.Handle
	displayHandle clock.Handle
}

// NewController wires game to scheduler. The game is switched to the
// scheduler's clock so gravity and the frame source agree on time.
func NewController(game *Game, scheduler *clock.Scheduler, renderer Renderer, display TimerDisplay) *Controller {
	if renderer == nil {
		renderer = RendererFunc(func(Snapshot) {})
	}
	if display == nil {
		display = TimerDisplayFunc(func(time.Duration) {})
	}

	c := &Controller{
		game:      game,
		scheduler: scheduler,
		renderer:  renderer,
		display:   display,
	}
	game.clock = scheduler.Clock()
	game.onReset = c.gameReset

	c.frameID = scheduler.Register("frame", 0, c.frame)
	c.displayID = scheduler.Register("display", DisplayRefresh, c.refresh)
	return c
}

func (c *Controller) frame(now time.Time) {
	if !c.game.Tick(now) {
		return
	}
	c.renderer.Render(c.game.Snapshot())
}

func (c *Controller) refresh(time.Time) {
	c.display.ShowElapsed(c.game.Elapsed())
}

// gameReset restarts the display timer after a game over, as a fresh run
// would.
func (c *Controller) gameReset() {
	if c.game.State() != Running {
		return
	}
	c.refresh(time.Time{})
	c.displayHandle = c.scheduler.Start(c.displayID)
}

// Start begins a run when none exists and resumes a paused one.
func (c *Controller) Start() {
	switch c.game.State() {
	case Uninitialized:
		c.Restart()
	case Paused:
		c.Resume()
	}
}

// Stop pauses the game and cancels both sources. Calling it repeatedly is
// harmless.
func (c *Controller) Stop() {
	c.game.Pause()
	if c.scheduler.Cancel(c.frameID) {
		c.game.logger.Printf("game paused after %s", c.game.Elapsed().Truncate(time.Second))
	}
	c.scheduler.Cancel(c.displayID)
}

// Resume continues a paused game and restarts both sources.
func (c *Controller) Resume() {
	if c.game.State() != Paused {
		return
	}
	c.game.Resume()
	c.displayHandle = c.scheduler.Start(c.displayID)
	c.frameHandle = c.scheduler.Start(c.frameID)
}

// Restart throws the current run away and starts a new one.
func (c *Controller) Restart() {
	c.Stop()
	c.game.Initialize()
	c.game.stats.Restarts++
	c.game.logger.Printf("game restarted on %dx%d board", c.game.cols, c.game.rows)

	c.refresh(time.Time{})
	c.displayHandle = c.scheduler.Start(c.displayID)
	c.frameHandle = c.scheduler.Start(c.frameID)
}

// MoveLeft shifts the piece one column left if possible.
func (c *Controller) MoveLeft() {
	c.game.TryMove(-1, 0)
}

// MoveRight shifts the piece one column right if possible.
func (c *Controller) MoveRight() {
	c.game.TryMove(1, 0)
}

// SoftDrop performs one gravity step immediately, locking the piece when
// it rests on something.
func (c *Controller) SoftDrop() {
	c.game.GravityStep()
}

// Rotate turns the piece clockwise if it fits.
func (c *Controller) Rotate() {
	c.game.TryRotate()
}

// Game returns the controlled game.
func (c *Controller) Game() *Game {
	return c.game
}

// Scheduler returns the scheduler the controller's sources live on.
func (c *Controller) Scheduler() *clock.Scheduler {
	return c.scheduler
}

// FrameActive reports whether frames are being scheduled.
func (c *Controller) FrameActive() bool {
	return c.scheduler.Live(c.frameHandle)
}

// DisplayActive reports whether the elapsed-time display is refreshing.
func (c *Controller) DisplayActive() bool {
	return c.scheduler.Live(c.displayHandle)
}
