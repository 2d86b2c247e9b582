package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Engine applies the Connect Four rules to caller-owned boards. It keeps no
// state between calls and never modifies a board it is given.
type Engine struct {
	log zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger routes validation failures and rejections to l
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l.With().Str("component", "rules").Logger()
	}
}

// NewEngine returns an engine that logs nothing unless WithLogger is given
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// IsStateValid reports whether b is a legal position
func (e *Engine) IsStateValid(b Board) bool {
	return e.validate("is_state_valid", b) == nil
}

// CurrentPlayer returns the colour to move next
func (e *Engine) CurrentPlayer(b Board) (Cell, error) {
	if err := e.validate("current_player", b); err != nil {
		return Empty, err
	}
	n, _ := CountDiscs(b)
	return toMove(n), nil
}

// HasWinner reports whether either colour has four in a row
func (e *Engine) HasWinner(b Board) (bool, error) {
	w, err := e.Winner(b)
	if err != nil {
		return false, err
	}
	return w != Empty, nil
}

// Winner returns the colour holding a four-in-a-row, or Empty
func (e *Engine) Winner(b Board) (Cell, error) {
	if err := e.validate("winner", b); err != nil {
		return Empty, err
	}
	return lineWinner(b), nil
}

// Play drops color into col and returns the resulting board
func (e *Engine) Play(b Board, col int, color Cell) (Board, error) {
	nb, _, err := e.Drop(b, col, color)
	return nb, err
}

// Drop is Play that also returns the row the disc landed in
func (e *Engine) Drop(b Board, col int, color Cell) (Board, int, error) {
	const op = "play"
	if err := e.validate(op, b); err != nil {
		return nil, -1, err
	}
	if w := lineWinner(b); w != Empty {
		return nil, -1, e.reject(op, b, errors.Wrapf(ErrGameOver, "%s already has four in a row", w), col, color)
	}
	if col < 0 || col > Cols-1 {
		return nil, -1, e.reject(op, b, errors.Wrapf(ErrColOutOfRange, "column %d", col), col, color)
	}
	if !color.IsDisc() {
		return nil, -1, e.reject(op, b, errors.Wrapf(ErrInvalidColor, "color has to be y or r, got %s", color), col, color)
	}
	n, _ := CountDiscs(b)
	if cur := toMove(n); color != cur {
		return nil, -1, e.reject(op, b, errors.Wrapf(ErrWrongPlayer, "current player is %s, not %s", cur, color), col, color)
	}
	nb, row, ok := dropDisc(b, col, color)
	if !ok {
		return nil, -1, e.reject(op, b, errors.Wrapf(ErrColFull, "column %d", col), col, color)
	}
	e.log.Debug().
		Str("op", op).
		Str("board", Fingerprint(nb)).
		Int("row", row).
		Int("col", col).
		Stringer("color", color).
		Msg("disc placed")
	return nb, row, nil
}

func (e *Engine) validate(op string, b Board) error {
	err := Validate(b)
	if err == nil {
		return nil
	}
	e.log.Warn().
		Str("op", op).
		Str("board", Fingerprint(b)).
		Err(err).
		Msg("invalid board state")
	return reject(op, errors.WithMessage(ErrInvalidState, err.Error()))
}

func (e *Engine) reject(op string, b Board, reason error, col int, color Cell) error {
	e.log.Debug().
		Str("op", op).
		Str("board", Fingerprint(b)).
		Int("col", col).
		Stringer("color", color).
		Err(reason).
		Msg("move rejected")
	return reject(op, reason)
}

var quiet = NewEngine()

// IsStateValid reports whether b is a legal position
func IsStateValid(b Board) bool { return quiet.IsStateValid(b) }

// CurrentPlayer returns the colour to move next, or a rejection for an invalid board
func CurrentPlayer(b Board) (Cell, error) { return quiet.CurrentPlayer(b) }

// HasWinner reports whether either colour has four in a row, or a rejection for an invalid board
func HasWinner(b Board) (bool, error) { return quiet.HasWinner(b) }

// Play returns a new board with color dropped into col, leaving b untouched
func Play(b Board, col int, color Cell) (Board, error) { return quiet.Play(b, col, color) }
