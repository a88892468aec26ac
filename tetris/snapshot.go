package tetris

import "time"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Board   [][]Kind
	Piece   Piece
	State   State
	Elapsed time.Duration
}

// Snapshot copies the current board and piece.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Piece:   g.piece,
		State:   g.state,
		Elapsed: g.Elapsed(),
	}
	if g.board != nil {
		s.Board = g.board.Snapshot()
	}
	return s
}

// Composite returns the board with the active piece drawn in. Piece cells
// above the top row are dropped.
func (s Snapshot) Composite() [][]Kind {
	out := make([][]Kind, len(s.Board))
	for r, row := range s.Board {
		out[r] = append([]Kind(nil), row...)
	}
	if len(out) == 0 {
		return out
	}

	s.Piece.Cells(func(row, col int) {
		if row >= 0 && row < len(out) && col >= 0 && col < len(out[row]) {
			out[row][col] = s.Piece.Shape.Kind()
		}
	})
	return out
}
