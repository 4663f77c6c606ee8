package solver

import "svw.info/sudokulab/internal/domain"

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// CanPlace reports whether writing v at (r,c) would conflict with any other
// cell in the same row, column, or box. The target cell's own content is
// ignored, so the question is well-posed for occupied cells too.
func CanPlace(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != c && b.Values[r][i] == v {
			return false
		}
		if i != r && b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if br+dr == r && bc+dc == c {
				continue
			}
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// canPlaceGrid is CanPlace over a bare grid; the search always targets empty
// cells so the self-skip is unnecessary there.
func canPlaceGrid(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
