package tetris

import "math/rand/v2"

// Kind identifies a tetromino. It doubles as the fill marker written into
// board cells, so Empty must stay the zero value.
type Kind uint8

const (
	Empty Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

var kindNames = [...]string{"Empty", "I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Shape is an immutable matrix of filled cells. Rotation returns a new
// Shape; catalog entries are shared and never modified.
type Shape struct {
	kind  Kind
	cells [][]bool
}

func newShape(kind Kind, rows ...[]uint8) Shape {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, v := range row {
			cells[r][c] = v != 0
		}
	}
	return Shape{kind: kind, cells: cells}
}

var catalog = [...]Shape{
	newShape(KindI, []uint8{1, 1, 1, 1}),
	newShape(KindO, []uint8{1, 1}, []uint8{1, 1}),
	newShape(KindT, []uint8{0, 1, 0}, []uint8{1, 1, 1}),
	newShape(KindS, []uint8{0, 1, 1}, []uint8{1, 1, 0}),
	newShape(KindZ, []uint8{1, 1, 0}, []uint8{0, 1, 1}),
	newShape(KindJ, []uint8{1, 0, 0}, []uint8{1, 1, 1}),
	newShape(KindL, []uint8{0, 0, 1}, []uint8{1, 1, 1}),
}

// Catalog returns the seven tetrominoes in their spawn orientation, ordered
// I, O, T, S, Z, J, L.
func Catalog() []Shape {
	shapes := make([]Shape, len(catalog))
	copy(shapes, catalog[:])
	return shapes
}

// ShapeOf returns the spawn orientation of kind.
func ShapeOf(kind Kind) Shape {
	if kind == Empty || int(kind) > len(catalog) {
		panic("no shape for kind " + kind.String())
	}
	return catalog[kind-1]
}

// Rand is the subset of math/rand/v2 the engine needs.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// RandomShape picks a catalog entry uniformly.
func RandomShape(r Rand) Shape {
	if r == nil {
		r = globalRand{}
	}
	return catalog[r.IntN(len(catalog))]
}

// RotateClockwise returns s transposed with its row order reversed, so an
// r×c shape becomes c×r. Four applications give back the original.
func RotateClockwise(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	rotated := make([][]bool, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
		for j := range rows {
			rotated[i][j] = s.cells[j][cols-1-i]
		}
	}
	return Shape{kind: s.kind, cells: rotated}
}

// Kind returns the tetromino this shape belongs to.
func (s Shape) Kind() Kind {
	return s.kind
}

// Rows returns the height of the matrix.
func (s Shape) Rows() int {
	return len(s.cells)
}

// Cols returns the width of the matrix.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the cell at (r, c) is part of the piece.
func (s Shape) Filled(r, c int) bool {
	return s.cells[r][c]
}

// Cells returns a copy of the matrix.
func (s Shape) Cells() [][]bool {
	out := make([][]bool, len(s.cells))
	for r, row := range s.cells {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both shapes have the same kind and fill pattern.
func (s Shape) Equal(other Shape) bool {
	if s.kind != other.kind || s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for r, row := range s.cells {
		for c, v := range row {
			if other.cells[r][c] != v {
				return false
			}
		}
	}
	return true
}

// String renders the matrix using '#' for filled cells and '.' otherwise,
// one row per line.
func (s Shape) String() string {
	buf := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for r, row := range s.cells {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for _, v := range row {
			if v {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
