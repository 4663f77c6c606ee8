package hint

import (
	"fmt"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

// hiddenSingle looks for a value that can go in only one empty cell of some
// row, column, or box.
func hiddenSingle(b *domain.Board) (domain.Hint, bool, error) {
	var unit [9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for c := 0; c < 9; c++ {
			unit[c] = domain.CellCoord{Row: i, Col: c}
		}
		if h, ok := hiddenInUnit(b, unit, "row"); ok {
			return h, true, nil
		}
		for r := 0; r < 9; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: i}
		}
		if h, ok := hiddenInUnit(b, unit, "column"); ok {
			return h, true, nil
		}
		j := 0
		br, bc := (i/3)*3, (i%3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				unit[j] = domain.CellCoord{Row: br + dr, Col: bc + dc}
				j++
			}
		}
		if h, ok := hiddenInUnit(b, unit, "box"); ok {
			return h, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func hiddenInUnit(b *domain.Board, unit [9]domain.CellCoord, kind string) (domain.Hint, bool) {
	for v := uint8(1); v <= 9; v++ {
		present := false
		for _, p := range unit {
			if b.Values[p.Row][p.Col] == v {
				present = true
				break
			}
		}
		if present {
			continue
		}
		var spot domain.CellCoord
		count := 0
		for _, p := range unit {
			if b.Values[p.Row][p.Col] != 0 {
				continue
			}
			if solver.CanPlace(b, p.Row, p.Col, v) {
				count++
				spot = p
				if count > 1 {
					break
				}
			}
		}
		if count == 1 {
			return domain.Hint{
				Message:  fmt.Sprintf("Hidden single: %d can only go here in this %s", v, kind),
				Cells:    []domain.CellCoord{spot},
				Value:    v,
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}
