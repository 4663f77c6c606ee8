package game

import (
	"errors"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

var (
	ErrGivenCell     = errors.New("cell is a fixed given")
	ErrOutOfRange    = errors.New("row, col, and value must be in range")
	ErrCellFilled    = errors.New("cell already holds a value")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// move records enough of one edit to undo it exactly: the cell's previous
// value and pencil marks, plus any peer marks pruned by a placement.
type move struct {
	cell      domain.CellCoord
	prevVal   uint8
	nextVal   uint8
	prevMarks uint16
	nextMarks uint16
	pruned    []domain.CellCoord // peers whose mark for nextVal was cleared
}

// Session is one play-through of a puzzle: the working board, pencil marks,
// undo/redo history, and bookkeeping the achievements layer consumes.
// Givens are immutable through the Session API.
type Session struct {
	puzzle    domain.Puzzle
	board     domain.Board
	marks     [9][9]uint16 // bit v set means v is penciled in
	undo      []move
	redo      []move
	mistakes  int
	hintsUsed int
	started   time.Time
	played    time.Duration // from restored saves
}

// New starts a session on a copy of the puzzle's board; filled cells become
// immutable givens.
func New(p domain.Puzzle) *Session {
	s := &Session{puzzle: p, board: p.Board, started: time.Now()}
	s.board.MarkGivens()
	return s
}

// Puzzle returns the puzzle this session plays.
func (s *Session) Puzzle() domain.Puzzle { return s.puzzle }

// Board returns a copy of the working board.
func (s *Session) Board() *domain.Board { return s.board.Clone() }

// Marks returns the pencil-mark bitmask of a cell (bit v set means v).
func (s *Session) Marks(r, c int) uint16 {
	if !inRange(r, c, 1) {
		return 0
	}
	return s.marks[r][c]
}

func inRange(r, c int, v uint8) bool {
	return r >= 0 && r < 9 && c >= 0 && c < 9 && v >= 1 && v <= 9
}

// Place writes v at (r,c). Placing over a given fails; placing a value that
// conflicts with the current board is allowed (the player may be wrong) but
// counts as a mistake. The cell's pencil marks are cleared and v is pruned
// from the marks of every peer in the same row, column, and box.
func (s *Session) Place(r, c int, v uint8) error {
	if !inRange(r, c, v) {
		return ErrOutOfRange
	}
	if s.board.Fixed[r][c] {
		return ErrGivenCell
	}
	if s.board.Values[r][c] == v {
		return nil
	}
	if !solver.CanPlace(&s.board, r, c, v) {
		s.mistakes++
	}
	m := move{
		cell:      domain.CellCoord{Row: r, Col: c},
		prevVal:   s.board.Values[r][c],
		nextVal:   v,
		prevMarks: s.marks[r][c],
	}
	s.board.Values[r][c] = v
	s.marks[r][c] = 0
	m.pruned = s.pruneMark(r, c, v)
	s.push(m)
	return nil
}

// Erase clears a non-given cell.
func (s *Session) Erase(r, c int) error {
	if !inRange(r, c, 1) {
		return ErrOutOfRange
	}
	if s.board.Fixed[r][c] {
		return ErrGivenCell
	}
	if s.board.Values[r][c] == 0 && s.marks[r][c] == 0 {
		return nil
	}
	m := move{
		cell:      domain.CellCoord{Row: r, Col: c},
		prevVal:   s.board.Values[r][c],
		prevMarks: s.marks[r][c],
	}
	s.board.Values[r][c] = 0
	s.marks[r][c] = 0
	s.push(m)
	return nil
}

// ToggleMark flips pencil mark v on an empty cell.
func (s *Session) ToggleMark(r, c int, v uint8) error {
	if !inRange(r, c, v) {
		return ErrOutOfRange
	}
	if s.board.Fixed[r][c] {
		return ErrGivenCell
	}
	if s.board.Values[r][c] != 0 {
		return ErrCellFilled
	}
	m := move{
		cell:      domain.CellCoord{Row: r, Col: c},
		prevMarks: s.marks[r][c],
	}
	s.marks[r][c] ^= 1 << v
	m.nextMarks = s.marks[r][c]
	s.push(m)
	return nil
}

// pruneMark clears mark v from the peers of (r,c), returning which cells
// actually changed so undo can restore them.
func (s *Session) pruneMark(r, c int, v uint8) []domain.CellCoord {
	bit := uint16(1) << v
	var pruned []domain.CellCoord
	clear := func(pr, pc int) {
		if (pr == r && pc == c) || s.marks[pr][pc]&bit == 0 {
			return
		}
		s.marks[pr][pc] &^= bit
		pruned = append(pruned, domain.CellCoord{Row: pr, Col: pc})
	}
	for i := 0; i < 9; i++ {
		clear(r, i)
		clear(i, c)
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			clear(br+dr, bc+dc)
		}
	}
	return pruned
}

func (s *Session) push(m move) {
	s.undo = append(s.undo, m)
	s.redo = s.redo[:0]
}

// Undo reverts the latest edit, including any pruned peer marks.
func (s *Session) Undo() error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	m := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	r, c := m.cell.Row, m.cell.Col
	s.board.Values[r][c] = m.prevVal
	s.marks[r][c] = m.prevMarks
	bit := uint16(1) << m.nextVal
	for _, p := range m.pruned {
		s.marks[p.Row][p.Col] |= bit
	}
	s.redo = append(s.redo, m)
	return nil
}

// Redo re-applies the latest undone edit.
func (s *Session) Redo() error {
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}
	m := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	r, c := m.cell.Row, m.cell.Col
	s.board.Values[r][c] = m.nextVal
	if m.nextVal != 0 {
		s.marks[r][c] = 0
	} else {
		s.marks[r][c] = m.nextMarks
	}
	bit := uint16(1) << m.nextVal
	for _, p := range m.pruned {
		s.marks[p.Row][p.Col] &^= bit
	}
	s.undo = append(s.undo, m)
	return nil
}

// NoteHint counts a consumed hint against this session.
func (s *Session) NoteHint() { s.hintsUsed++ }

// Mistakes reports how many conflicting placements were made.
func (s *Session) Mistakes() int { return s.mistakes }

// HintsUsed reports how many hints the player consumed.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// Elapsed is total play time including restored sessions.
func (s *Session) Elapsed() time.Duration {
	return s.played + time.Since(s.started)
}
