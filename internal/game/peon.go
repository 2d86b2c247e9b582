package game

// dropDisc places cell in the lowest empty row of col on a copy of board and
// returns the copy with the landing row. board itself is left untouched.
func dropDisc(board Board, col int, cell Cell) (Board, int, bool) {
	// scans from bottom to top for the first free slot
	for r := Rows - 1; r >= 0; r-- {
		if board[r][col] == Empty {
			nb := board.Clone()
			nb[r][col] = cell
			return nb, r, true
		}
	}
	return board, -1, false
}
