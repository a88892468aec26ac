package ui

import "github.com/plus3/blockfall/tetris"

// Background is the colour of empty cells.
var Background = [3]uint8{20, 20, 28}

var kindColors = [...][3]uint8{
	tetris.Empty: Background,
	tetris.KindI: {102, 191, 255},
	tetris.KindO: {255, 203, 0},
	tetris.KindT: {135, 60, 190},
	tetris.KindS: {0, 158, 47},
	tetris.KindZ: {255, 109, 194},
	tetris.KindJ: {0, 121, 241},
	tetris.KindL: {255, 161, 0},
}

// KindColor returns the RGB colour frontends paint a kind with.
func KindColor(k tetris.Kind) [3]uint8 {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return Background
}
