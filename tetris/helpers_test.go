package tetris_test

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// seqRand replays a fixed cycle of kinds through RandomShape.
type seqRand struct {
	kinds []tetris.Kind
	next  int
}

func sequence(kinds ...tetris.Kind) *seqRand {
	return &seqRand{kinds: kinds}
}

func (s *seqRand) IntN(n int) int {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int(k) - 1
}

var kindByRune = map[rune]tetris.Kind{
	'.': tetris.Empty,
	'I': tetris.KindI,
	'O': tetris.KindO,
	'T': tetris.KindT,
	'S': tetris.KindS,
	'Z': tetris.KindZ,
	'J': tetris.KindJ,
	'L': tetris.KindL,
}

// parseBoard builds a board from rows drawn with '.' and kind letters.
func parseBoard(t *testing.T, text string) *tetris.Board {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	board := tetris.NewBoard(len(lines[0]), len(lines))
	for r, line := range lines {
		require.Len(t, line, board.Cols(), "row %d has the wrong width", r)
		for c, ch := range line {
			kind, ok := kindByRune[ch]
			require.True(t, ok, "unknown cell %q at row %d", ch, r)
			board.Set(r, c, kind)
		}
	}
	return board
}

// fillRow fills every cell of row except the listed gap columns.
func fillRow(board *tetris.Board, row int, gaps ...int) {
	for c := range board.Cols() {
		board.Set(row, c, tetris.KindJ)
	}
	for _, c := range gaps {
		board.Set(row, c, tetris.Empty)
	}
}
