package game

// Counts tallies discs per colour
type Counts struct {
	Yellow int
	Red    int
}

// CountDiscs tallies every cell and checks that yellow leads by zero or one
func CountDiscs(b Board) (Counts, error) {
	var n Counts
	for r, row := range b {
		for c, cell := range row {
			switch cell {
			case Empty:
			case Yellow:
				n.Yellow++
			case Red:
				n.Red++
			default:
				return Counts{}, &InvalidColorError{Row: r, Col: c, Cell: cell}
			}
		}
	}
	if d := n.Yellow - n.Red; d < 0 || d > 1 {
		return Counts{}, &ImbalancedCountError{Yellow: n.Yellow, Red: n.Red}
	}
	return n, nil
}

// Validate returns nil for a well-formed board, or the first violation found
func Validate(b Board) error {
	if len(b) != Rows {
		return &DimensionError{Row: -1, Got: len(b), Want: Rows}
	}
	for r, row := range b {
		if len(row) != Cols {
			return &DimensionError{Row: r, Got: len(row), Want: Cols}
		}
	}
	if _, err := CountDiscs(b); err != nil {
		return err
	}
	for c := 0; c < Cols; c++ {
		stacked := b[Rows-1][c] != Empty
		for r := Rows - 2; r >= 0; r-- {
			if stacked {
				if b[r][c] == Empty {
					stacked = false
				}
			} else if b[r][c] != Empty {
				return &FloatingDiscError{Row: r, Col: c}
			}
		}
	}
	return nil
}

// toMove derives the next colour from already-validated counts
func toMove(n Counts) Cell {
	if n.Yellow == n.Red {
		return Yellow
	}
	return Red
}
