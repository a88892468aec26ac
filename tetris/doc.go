// Package tetris implements the game state engine of a falling-block puzzle:
// the shape catalog, the board with collision and line clearing, the active
// piece, and the Controller that runs gravity, locking, respawn and the
// pause/resume lifecycle on a clock.Scheduler.
//
// Rendering and key handling are left to callers. A Controller hands each
// frame to a Renderer as a Snapshot and reports elapsed time to a
// TimerDisplay; input is a set of zero-argument methods.
package tetris
