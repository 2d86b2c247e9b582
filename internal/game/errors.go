package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRejected marks every operation that could not be performed. Test for it
// with errors.Is; the specific reason is wrapped underneath.
var ErrRejected = errors.New("rejected")

var (
	ErrInvalidState  = errors.New("invalid board state")
	ErrGameOver      = errors.New("game over")
	ErrColOutOfRange = errors.New("column out of range")
	ErrInvalidColor  = errors.New("invalid color")
	ErrWrongPlayer   = errors.New("wrong player")
	ErrColFull       = errors.New("column full")
)

// Rejection is returned by every public engine operation that refuses its input
type Rejection struct {
	Op     string
	Reason error
}

func (r *Rejection) Error() string { return r.Op + ": " + r.Reason.Error() }

func (r *Rejection) Unwrap() error { return r.Reason }

func (r *Rejection) Is(target error) bool { return target == ErrRejected }

func reject(op string, reason error) error {
	return &Rejection{Op: op, Reason: reason}
}

// DimensionError reports a board that is not 6 rows of 7 columns. Row is -1
// when the row count itself is wrong.
type DimensionError struct {
	Row  int
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("board has %d rows, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("row %d has %d columns, want %d", e.Row, e.Got, e.Want)
}

// InvalidColorError reports a cell holding neither a disc nor Empty
type InvalidColorError struct {
	Row, Col int
	Cell     Cell
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("unknown color tag %d at row %d column %d", uint8(e.Cell), e.Row, e.Col)
}

// ImbalancedCountError reports yellow not leading red by zero or one
type ImbalancedCountError struct {
	Yellow, Red int
}

func (e *ImbalancedCountError) Error() string {
	return fmt.Sprintf("disc counts out of balance: yellow=%d red=%d", e.Yellow, e.Red)
}

// FloatingDiscError reports an occupied cell with air somewhere below it
type FloatingDiscError struct {
	Row, Col int
}

func (e *FloatingDiscError) Error() string {
	return fmt.Sprintf("disc floating at row %d column %d", e.Row, e.Col)
}
