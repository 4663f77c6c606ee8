package game

import (
	"time"

	"svw.info/sudokulab/internal/domain"
)

// Save is the serializable snapshot of a session for the key-value store.
// Undo history deliberately does not survive a save.
type Save struct {
	Puzzle      domain.Puzzle `json:"puzzle"`
	Values      [9][9]uint8   `json:"values"`
	Marks       [9][9]uint16  `json:"marks,omitempty"`
	Mistakes    int           `json:"mistakes,omitempty"`
	HintsUsed   int           `json:"hintsUsed,omitempty"`
	PlayedForMs int64         `json:"playedForMs,omitempty"`
	SavedAt     int64         `json:"savedAt"`
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() Save {
	return Save{
		Puzzle:      s.puzzle,
		Values:      s.board.Values,
		Marks:       s.marks,
		Mistakes:    s.mistakes,
		HintsUsed:   s.hintsUsed,
		PlayedForMs: s.Elapsed().Milliseconds(),
		SavedAt:     time.Now().UnixNano(),
	}
}

// Restore rebuilds a session from a save. Givens come from the original
// puzzle board, not from the player's progress, so restored player entries
// stay editable.
func Restore(sv Save) *Session {
	s := New(sv.Puzzle)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !s.board.Fixed[r][c] {
				s.board.Values[r][c] = sv.Values[r][c]
			}
		}
	}
	s.marks = sv.Marks
	s.mistakes = sv.Mistakes
	s.hintsUsed = sv.HintsUsed
	s.played = time.Duration(sv.PlayedForMs) * time.Millisecond
	return s
}
