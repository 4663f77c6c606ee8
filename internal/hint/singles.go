package hint

import (
	"context"
	"fmt"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

// Singles implements a Hinter that suggests naked and hidden singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found single if max tier allows it. Naked singles
// are preferred over hidden singles since they are easier to explain.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if ok {
				msg := fmt.Sprintf("Naked single: only %d fits here", v)
				return domain.Hint{
					Message:  msg,
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return hiddenSingle(b)
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if solver.CanPlace(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
