package game

import (
	"errors"
	"testing"
)

// helper to apply a sequence of columns for alternating players
func playCols(t *testing.T, s *Session, cols ...int) {
	t.Helper()
	for i, c := range cols {
		if _, err := s.Play(c); err != nil {
			t.Fatalf("move %d (column %d) failed: %v", i, c, err)
		}
	}
}

func TestSessionAlternatesPlayers(t *testing.T) {
	s := NewSession(nil)
	m, err := s.Play(3)
	if err != nil {
		t.Fatalf("first move: %v", err)
	}
	if m.Color != Yellow || m.Row != Rows-1 || m.Col != 3 {
		t.Fatalf("unexpected first move %+v", m)
	}
	m, err = s.Play(3)
	if err != nil {
		t.Fatalf("second move: %v", err)
	}
	if m.Color != Red || m.Row != Rows-2 {
		t.Fatalf("unexpected second move %+v", m)
	}
	if s.LastRow != Rows-2 || s.LastCol != 3 {
		t.Fatalf("last move not tracked: %d/%d", s.LastRow, s.LastCol)
	}
	if _, err := s.PlayAs(0, Red); !errors.Is(err, ErrWrongPlayer) {
		t.Fatalf("expected wrong player, got %v", err)
	}
}

func TestSessionDetectsWin(t *testing.T) {
	s := NewSession(NewEngine())
	playCols(t, s, 0, 1, 0, 1, 0, 1, 0)
	if s.Winner() != Yellow || !s.Over() {
		t.Fatalf("expected yellow to have won, board:\n%s", s.Board)
	}
	if _, err := s.Play(2); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected game over, got %v", err)
	}
}

func TestSessionUndoAndReset(t *testing.T) {
	s := NewSession(nil)
	playCols(t, s, 2, 4)
	after := s.Board.String()
	playCols(t, s, 5)
	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.Board.String() != after {
		t.Fatalf("undo did not restore board:\n%s", s.Board)
	}
	if s.LastCol != 4 || len(s.Moves) != 2 {
		t.Fatalf("unexpected state after undo: last col %d, %d moves", s.LastCol, len(s.Moves))
	}
	s.Reset()
	if len(s.Moves) != 0 || s.Board.String() != NewBoard().String() {
		t.Fatalf("reset left state behind")
	}
	if err := s.Undo(); err == nil {
		t.Fatalf("expected undo on fresh session to fail")
	}
}

func TestSessionLoad(t *testing.T) {
	s := NewSession(nil)
	b := mustParse(t, midGame)
	if err := s.Load(b); err != nil {
		t.Fatalf("load: %v", err)
	}
	b[0][0] = Red
	if s.Board[0][0] != Empty {
		t.Fatalf("session shares rows with the loaded board")
	}
	if err := s.Load(b); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected invalid board to be rejected, got %v", err)
	}
}

func TestDrawOnFullBoard(t *testing.T) {
	b := mustParse(t, `
ryryryr
yryryry
ryryryr
ryryryr
yryryry
yryryry`)
	if !IsStateValid(b) {
		t.Fatalf("expected full board to be valid")
	}
	if w, _ := HasWinner(b); w {
		t.Fatalf("expected no winner on drawn board")
	}
	if !IsFull(b) {
		t.Fatalf("expected board to be full")
	}
	s := NewSession(nil)
	if err := s.Load(b); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !s.Over() {
		t.Fatalf("expected a full board to end the game")
	}
}
