package game

import (
	"errors"
	"testing"

	"svw.info/sudokulab/internal/domain"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	b, err := domain.ParseBoard(`
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`)
	if err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return New(domain.Puzzle{ID: "classic", Name: "classic", Board: *b})
}

func TestPlaceRespectsGivens(t *testing.T) {
	s := newTestSession(t)
	if err := s.Place(0, 0, 9); !errors.Is(err, ErrGivenCell) {
		t.Fatalf("want ErrGivenCell, got %v", err)
	}
	if err := s.Erase(0, 0); !errors.Is(err, ErrGivenCell) {
		t.Fatalf("want ErrGivenCell for erase, got %v", err)
	}
	if s.Board().Values[0][0] != 5 {
		t.Fatal("given changed")
	}
}

func TestPlaceCountsMistakes(t *testing.T) {
	s := newTestSession(t)
	// 5 already sits at (0,0), same row
	if err := s.Place(0, 2, 5); err != nil {
		t.Fatalf("conflicting placement should be allowed: %v", err)
	}
	if s.Mistakes() != 1 {
		t.Fatalf("mistakes = %d, want 1", s.Mistakes())
	}
	// legal placement adds none
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if s.Mistakes() != 1 {
		t.Fatalf("mistakes = %d, want still 1", s.Mistakes())
	}
}

func TestUndoRedo(t *testing.T) {
	s := newTestSession(t)
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := s.Place(0, 3, 6); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	b := s.Board()
	if b.Values[0][3] != 0 || b.Values[0][2] != 4 {
		t.Fatalf("undo went wrong:\n%s", b.String())
	}
	if err := s.Redo(); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if s.Board().Values[0][3] != 6 {
		t.Fatal("redo did not reapply")
	}
	if err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("want ErrNothingToRedo, got %v", err)
	}
	// a fresh edit clears the redo stack
	_ = s.Undo()
	if err := s.Place(0, 3, 2); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := s.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("redo stack should be cleared, got %v", err)
	}
}

func TestMarksPrunedOnPlacementAndRestoredOnUndo(t *testing.T) {
	s := newTestSession(t)
	if err := s.ToggleMark(0, 2, 4); err != nil {
		t.Fatalf("ToggleMark failed: %v", err)
	}
	if err := s.ToggleMark(0, 3, 4); err != nil {
		t.Fatalf("ToggleMark failed: %v", err)
	}
	// placing 4 at (0,2) clears its own marks and prunes 4 from the
	// row peer (0,3)
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if s.Marks(0, 2) != 0 {
		t.Fatal("own marks not cleared")
	}
	if s.Marks(0, 3)&(1<<4) != 0 {
		t.Fatal("peer mark not pruned")
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if s.Marks(0, 2)&(1<<4) == 0 || s.Marks(0, 3)&(1<<4) == 0 {
		t.Fatal("undo did not restore pencil marks")
	}
}

func TestToggleMarkRules(t *testing.T) {
	s := newTestSession(t)
	if err := s.ToggleMark(0, 0, 1); !errors.Is(err, ErrGivenCell) {
		t.Fatalf("want ErrGivenCell, got %v", err)
	}
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if err := s.ToggleMark(0, 2, 1); !errors.Is(err, ErrCellFilled) {
		t.Fatalf("want ErrCellFilled, got %v", err)
	}
	if err := s.ToggleMark(0, 3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestSession(t)
	_ = s.Place(0, 2, 4)
	_ = s.ToggleMark(0, 3, 6)
	s.NoteHint()

	sv := s.Snapshot()
	r := Restore(sv)

	if r.Board().Values[0][2] != 4 {
		t.Fatal("player value lost")
	}
	if r.Board().Fixed[0][2] {
		t.Fatal("player value became a given on restore")
	}
	if r.Marks(0, 3)&(1<<6) == 0 {
		t.Fatal("pencil marks lost")
	}
	if r.HintsUsed() != 1 || r.Mistakes() != 0 {
		t.Fatalf("counters lost: hints=%d mistakes=%d", r.HintsUsed(), r.Mistakes())
	}
}
