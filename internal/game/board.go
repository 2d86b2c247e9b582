package game

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Cols  = 7
	Rows  = 6
	toWin = 4
)

type Cell uint8

const (
	Empty Cell = iota
	Yellow
	Red
)

// String returns the one-character form used by ParseBoard
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Yellow:
		return "y"
	case Red:
		return "r"
	}
	return "?"
}

// IsDisc reports whether c is one of the two playable colours
func (c Cell) IsDisc() bool { return c == Yellow || c == Red }

// Opponent returns the other colour, or Empty for anything that is not a disc
func (c Cell) Opponent() Cell {
	switch c {
	case Yellow:
		return Red
	case Red:
		return Yellow
	}
	return Empty
}

// ParseCell maps "y", "r" and the empty markers to a Cell
func ParseCell(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yellow":
		return Yellow, nil
	case "r", "red":
		return Red, nil
	case ".", "-", "0", "":
		return Empty, nil
	}
	return Empty, errors.Errorf("unknown color %q", s)
}

// Board holds cells in row-major order, row 0 at the top
type Board [][]Cell

// NewBoard creates an empty 6x7 board
func NewBoard() Board {
	b := make(Board, Rows)
	for r := range b {
		b[r] = make([]Cell, Cols)
	}
	return b
}

// Clone returns a deep copy that shares no rows with b
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	nb := make(Board, len(b))
	for r, row := range b {
		nb[r] = append([]Cell(nil), row...)
	}
	return nb
}

// IsFull reports whether the top row has no empty cell left
func IsFull(b Board) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b[0] {
		if c == Empty {
			return false
		}
	}
	return true
}

// String renders one line per row using the Cell characters
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// ParseBoard reads rows separated by newlines or '/'. Unknown characters are
// kept as out-of-range cells so Validate can report them.
func ParseBoard(s string) (Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty board")
	}
	lines := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '/' || r == '\r'
	})
	b := make(Board, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			if ch == ' ' || ch == '\t' || ch == '|' {
				continue
			}
			c, err := ParseCell(string(ch))
			if err != nil {
				c = UnknownCell
			}
			row = append(row, c)
		}
		b = append(b, row)
	}
	return b, nil
}

// UnknownCell stands in for any colour tag that could not be parsed
const UnknownCell Cell = 0xFF
