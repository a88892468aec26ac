package tetris

import (
	"io"
	"log"
	"time"

	"github.com/plus3/blockfall/clock"
)

const (
	// CellSize is the edge of one board cell in display pixels.
	CellSize = 30
	// DisplayWidth and DisplayHeight are the playfield size in pixels.
	DisplayWidth  = 300
	DisplayHeight = 600
	// Cols and Rows are the board dimensions in cells.
	Cols = DisplayWidth / CellSize
	Rows = DisplayHeight / CellSize

	// GravityInterval is the time between automatic one-row drops.
	GravityInterval = 500 * time.Millisecond
	// DisplayRefresh is the period of the elapsed-time display.
	DisplayRefresh = time.Second
)

// State is the lifecycle state of a Game.
type State int

const (
	Uninitialized State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "State(?)"
	}
}

// Hooks are optional callbacks fired synchronously from inside the engine.
type Hooks struct {
	PieceLocked  func(Piece)
	LinesCleared func(n int)
	Reset        func()
}

// Stats counts engine events across resets. They are diagnostics only.
type Stats struct {
	Spawns       int64
	Locks        int64
	LinesCleared int64
	Resets       int64
	Restarts     int64
	// ClearsBySize[n] counts lock events that cleared exactly n rows.
	ClearsBySize [5]int64
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the source used to pick shapes.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithBoardSize overrides the default Cols×Rows board.
func WithBoardSize(cols, rows int) Option {
	return func(g *Game) {
		g.cols = cols
		g.rows = rows
	}
}

// WithClock sets the clock used for initialization and resume.
func WithClock(c clock.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithHooks installs engine callbacks.
func WithHooks(h Hooks) Option {
	return func(g *Game) {
		g.hooks = h
	}
}

// Game is the complete state of one run: board, active piece and the
// gravity clock. A Game is owned by a single goroutine.
type Game struct {
	cols int
	rows int

	board *Board
	piece Piece
	state State

	lastDrop  time.Time
	startedAt time.Time

	clock  clock.Clock
	rand   Rand
	logger *log.Logger
	hooks  Hooks
	stats  Stats

	// onReset is set by the Controller to restart the display timer.
	onReset func()
}

// NewGame creates an uninitialized game.
func NewGame(opts ...Option) *Game {
	g := &Game{
		cols:   Cols,
		rows:   Rows,
		clock:  clock.System{},
		rand:   globalRand{},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Initialize discards all state and starts a fresh run: empty board, new
// piece, clocks reset, state Running.
func (g *Game) Initialize() {
	now := g.clock.Now()
	g.board = NewBoard(g.cols, g.rows)
	g.spawn()
	g.lastDrop = now
	g.startedAt = now
	g.state = Running
}

// spawn places a random piece at the top centre and reports whether it fits.
func (g *Game) spawn() bool {
	g.piece = Piece{
		Shape:    RandomShape(g.rand),
		Position: spawnPosition(g.cols),
	}
	g.stats.Spawns++
	return !g.board.Collides(g.piece.Position.X, g.piece.Position.Y, g.piece.Shape)
}

// Tick advances the gravity clock. When more than GravityInterval has
// passed since the last drop the piece falls one row. It reports whether
// the frame should be rendered, which is only the case while Running.
func (g *Game) Tick(now time.Time) bool {
	if g.state != Running {
		return false
	}
	if now.Sub(g.lastDrop) > GravityInterval {
		g.lastDrop = now
		g.GravityStep()
	}
	return true
}

// GravityStep moves the piece down one row, or locks it when it cannot
// move. Locking merges the piece, clears full rows and spawns the next
// piece; a piece that cannot spawn resets the whole game.
func (g *Game) GravityStep() {
	if g.board == nil {
		return
	}
	if g.TryMove(0, 1) {
		return
	}
	g.lock()
}

func (g *Game) lock() {
	locked := g.piece
	g.board.Merge(locked.Position.X, locked.Position.Y, locked.Shape)
	g.stats.Locks++
	if g.hooks.PieceLocked != nil {
		g.hooks.PieceLocked(locked)
	}

	cleared := g.board.ClearFullLines()
	if cleared > 0 {
		g.stats.LinesCleared += int64(cleared)
		if cleared < len(g.stats.ClearsBySize) {
			g.stats.ClearsBySize[cleared]++
		}
		if g.hooks.LinesCleared != nil {
			g.hooks.LinesCleared(cleared)
		}
	}

	if g.spawn() {
		return
	}

	g.logger.Printf("spawn blocked by %s piece after %s, resetting board", g.piece.Shape.Kind(), g.Elapsed().Truncate(time.Second))
	paused := g.state == Paused
	g.stats.Resets++
	g.Initialize()
	if paused {
		// Inputs can lock pieces while paused; the reset must not resume.
		g.state = Paused
	}
	if g.hooks.Reset != nil {
		g.hooks.Reset()
	}
	if g.onReset != nil {
		g.onReset()
	}
}

// TryMove shifts the piece by (dx, dy) if the destination is free. Blocked
// moves leave the piece untouched and return false.
func (g *Game) TryMove(dx, dy int) bool {
	if g.board == nil {
		return false
	}
	x, y := g.piece.Position.X+dx, g.piece.Position.Y+dy
	if g.board.Collides(x, y, g.piece.Shape) {
		return false
	}
	g.piece.Position = Position{X: x, Y: y}
	return true
}

// TryRotate turns the piece clockwise in place. There are no wall kicks: a
// rotation that would overlap anything is rejected.
func (g *Game) TryRotate() bool {
	if g.board == nil {
		return false
	}
	rotated := RotateClockwise(g.piece.Shape)
	if g.board.Collides(g.piece.Position.X, g.piece.Position.Y, rotated) {
		return false
	}
	g.piece.Shape = rotated
	return true
}

// Pause freezes gravity. It is a no-op unless Running.
func (g *Game) Pause() {
	if g.state == Running {
		g.state = Paused
	}
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.state != Paused {
		return
	}
	g.state = Running

	// This works out to lastDrop unchanged: time spent paused is not
	// compensated, so the first tick after a long pause drops at once.
	now := g.clock.Now()
	g.lastDrop = now.Add(-now.Sub(g.lastDrop))
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Board returns the live board, nil before Initialize.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns the active piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// LastDrop returns the time of the last gravity step taken by Tick.
func (g *Game) LastDrop() time.Time {
	return g.lastDrop
}

// Elapsed returns the time since the run started. Pauses are not
// subtracted.
func (g *Game) Elapsed() time.Duration {
	if g.state == Uninitialized {
		return 0
	}
	return g.clock.Now().Sub(g.startedAt)
}

// Stats returns a copy of the engine counters.
func (g *Game) Stats() Stats {
	return g.stats
}
