package tetris

// Position is the board column (X) and row (Y) of a shape's top-left corner.
type Position struct {
	X, Y int
}

// Piece is the falling tetromino: its current rotation and where it sits.
type Piece struct {
	Shape    Shape
	Position Position
}

// spawnPosition centres a piece horizontally on the top row.
func spawnPosition(cols int) Position {
	return Position{X: cols/2 - 1, Y: 0}
}

// Cells calls fn for every board cell the piece covers.
func (p Piece) Cells(fn func(row, col int)) {
	for r, row := range p.Shape.cells {
		for c, filled := range row {
			if filled {
				fn(p.Position.Y+r, p.Position.X+c)
			}
		}
	}
}
