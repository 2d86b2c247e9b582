package game

import "github.com/pkg/errors"

// Move is one placed disc
type Move struct {
	Row   int
	Col   int
	Color Cell
}

// Session tracks one game in progress on top of an Engine. It is not safe for
// concurrent use; callers serialise moves per session.
type Session struct {
	engine  *Engine
	Board   Board
	History []Board
	Moves   []Move
	LastRow int
	LastCol int
}

// NewSession starts an empty board; a nil engine falls back to a silent one
func NewSession(e *Engine) *Session {
	if e == nil {
		e = quiet
	}
	return &Session{
		engine:  e,
		Board:   NewBoard(),
		LastRow: -1,
		LastCol: -1,
	}
}

// Load replaces the board with b after checking it is a legal position.
// History is cleared since earlier moves are unknown.
func (s *Session) Load(b Board) error {
	if !s.engine.IsStateValid(b) {
		return reject("load", ErrInvalidState)
	}
	s.Board = b.Clone()
	s.History = nil
	s.Moves = nil
	s.LastRow, s.LastCol = -1, -1
	return nil
}

// NextPlayer returns the colour to move on the current board
func (s *Session) NextPlayer() (Cell, error) { return s.engine.CurrentPlayer(s.Board) }

// Play drops the current player's disc into col
func (s *Session) Play(col int) (Move, error) {
	p, err := s.NextPlayer()
	if err != nil {
		return Move{}, err
	}
	return s.PlayAs(col, p)
}

// PlayAs drops a disc of the given colour, which must be the current player's
func (s *Session) PlayAs(col int, color Cell) (Move, error) {
	nb, row, err := s.engine.Drop(s.Board, col, color)
	if err != nil {
		return Move{}, err
	}
	m := Move{Row: row, Col: col, Color: color}
	s.History = append(s.History, s.Board)
	s.Moves = append(s.Moves, m)
	s.Board = nb
	s.LastRow, s.LastCol = row, col
	return m, nil
}

// Undo restores the board from before the last move
func (s *Session) Undo() error {
	if len(s.History) == 0 {
		return errors.New("nothing to undo")
	}
	last := len(s.History) - 1
	s.Board = s.History[last]
	s.History = s.History[:last]
	s.Moves = s.Moves[:len(s.Moves)-1]
	s.LastRow, s.LastCol = -1, -1
	if n := len(s.Moves); n > 0 {
		s.LastRow, s.LastCol = s.Moves[n-1].Row, s.Moves[n-1].Col
	}
	return nil
}

// Reset clears the board and move history, keeping the engine
func (s *Session) Reset() {
	e := s.engine
	*s = *NewSession(e)
}

// Winner returns the winning colour, or Empty while no line exists
func (s *Session) Winner() Cell {
	w, err := s.engine.Winner(s.Board)
	if err != nil {
		return Empty
	}
	return w
}

// Over reports a win or a full board
func (s *Session) Over() bool {
	return s.Winner() != Empty || IsFull(s.Board)
}
