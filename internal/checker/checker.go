package checker

import (
	"context"

	"svw.info/sudokulab/internal/domain"
)

// GridChecker analyzes a whole board for completeness and duplicates.
type GridChecker struct{}

func New() *GridChecker { return &GridChecker{} }

// Check scans every row, column, and box independently. When a value occurs
// more than once inside a unit, every cell of that unit holding the value
// joins the conflict set, so duplicated cells highlight symmetrically.
// Conflicts are deduplicated and returned in row-major order. The board is
// not mutated.
func (*GridChecker) Check(ctx context.Context, b *domain.Board) (domain.CheckResult, error) {
	var marked [9][9]bool

	markDups := func(cells [9]domain.CellCoord) {
		var count [10]int
		for _, p := range cells {
			count[b.Values[p.Row][p.Col]]++
		}
		for _, p := range cells {
			v := b.Values[p.Row][p.Col]
			if v != 0 && count[v] > 1 {
				marked[p.Row][p.Col] = true
			}
		}
	}

	var unit [9]domain.CellCoord
	// rows
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		markDups(unit)
	}
	// cols
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		markDups(unit)
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					unit[i] = domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc}
					i++
				}
			}
			markDups(unit)
		}
	}

	// collecting from the marked matrix dedupes across units and yields
	// row-major order for free
	res := domain.CheckResult{Complete: b.EmptyCount() == 0}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if marked[r][c] {
				res.Conflicts = append(res.Conflicts, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	res.Valid = res.Complete && len(res.Conflicts) == 0
	return res, nil
}
