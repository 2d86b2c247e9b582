package game

type coord struct{ row, col int }

// diagonal scans start on the left/bottom (or right/bottom) border wherever a
// ray of at least four cells fits
var (
	risingStarts  = []coord{{3, 0}, {4, 0}, {5, 0}, {5, 1}, {5, 2}, {5, 3}}
	fallingStarts = []coord{{3, 6}, {4, 6}, {5, 6}, {5, 5}, {5, 4}, {5, 3}}
)

func inBounds(r, c int) bool { return r >= 0 && r < Rows && c >= 0 && c < Cols }

// connected walks from (row, col) by (dr, dc) and returns the colour of the
// first run of four, or Empty
func connected(b Board, row, col, dr, dc int) Cell {
	cur := b[row][col]
	count := 1
	for r, c := row+dr, col+dc; inBounds(r, c); r, c = r+dr, c+dc {
		if b[r][c] != Empty && b[r][c] == cur {
			count++
		} else {
			cur = b[r][c]
			count = 1
		}
		if count >= toWin {
			return cur
		}
	}
	return Empty
}

// lineWinner runs the four passes over a board already known to be valid
func lineWinner(b Board) Cell {
	// horizontal
	for r := 0; r < Rows; r++ {
		if w := connected(b, r, 0, 0, 1); w != Empty {
			return w
		}
	}
	// vertical
	for c := 0; c < Cols; c++ {
		if w := connected(b, 0, c, 1, 0); w != Empty {
			return w
		}
	}
	// bottom-left to upper-right
	for _, s := range risingStarts {
		if w := connected(b, s.row, s.col, -1, 1); w != Empty {
			return w
		}
	}
	// bottom-right to upper-left
	for _, s := range fallingStarts {
		if w := connected(b, s.row, s.col, -1, -1); w != Empty {
			return w
		}
	}
	return Empty
}
