package tetris

import (
	"fmt"
	"strings"
)

// Board is the fixed-size grid pieces lock into. Dimensions never change
// after creation.
type Board struct {
	cols  int
	rows  int
	cells [][]Kind
}

// NewBoard allocates an empty board.
func NewBoard(cols, rows int) *Board {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", cols, rows))
	}

	cells := make([][]Kind, rows)
	for r := range cells {
		cells[r] = make([]Kind, cols)
	}
	return &Board{cols: cols, rows: rows, cells: cells}
}

// Cols returns the board width in cells.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// At returns the cell at (row, col). Out of range reads return Empty.
func (b *Board) At(row, col int) Kind {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Empty
	}
	return b.cells[row][col]
}

// Set writes k into the cell at (row, col). It panics when out of range.
func (b *Board) Set(row, col int, k Kind) {
	b.cells[row][col] = k
}

// Occupied reports whether a piece cell may not move to (row, col). Columns
// outside the board and rows below the floor block; rows above the top do
// not, so a piece can be tested before it has fully entered.
func (b *Board) Occupied(row, col int) bool {
	if col < 0 || col >= b.cols || row >= b.rows {
		return true
	}
	if row < 0 {
		return false
	}
	return b.cells[row][col] != Empty
}

// Collides reports whether s placed with its top-left corner at column x,
// row y overlaps a blocking cell.
func (b *Board) Collides(x, y int, s Shape) bool {
	for r, row := range s.cells {
		for c, filled := range row {
			if filled && b.Occupied(y+r, x+c) {
				return true
			}
		}
	}
	return false
}

// Merge writes s.Kind() into every cell covered by s at (x, y). The caller
// must have checked the placement with Collides; Merge panics on cells
// outside the board.
func (b *Board) Merge(x, y int, s Shape) {
	for r, row := range s.cells {
		for c, filled := range row {
			if filled {
				b.cells[y+r][x+c] = s.kind
			}
		}
	}
}

func (b *Board) rowFull(r int) bool {
	for _, cell := range b.cells[r] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// ClearFullLines removes every completely filled row, shifting the rows
// above down and inserting empty rows at the top. It returns the number of
// rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for r := b.rows - 1; r >= 0; {
		if !b.rowFull(r) {
			r--
			continue
		}

		// Reuse the removed row's backing array as the new top row.
		removed := b.cells[r]
		copy(b.cells[1:r+1], b.cells[:r])
		clear(removed)
		b.cells[0] = removed
		cleared++
		// Row r now holds what was above it; examine it again.
	}
	return cleared
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() [][]Kind {
	out := make([][]Kind, b.rows)
	for r, row := range b.cells {
		out[r] = append([]Kind(nil), row...)
	}
	return out
}

// String renders the board one row per line, '.' for empty cells and the
// kind letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(cell.String())
			}
		}
	}
	return sb.String()
}
