package puzzles

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokulab/internal/checker"
	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

func TestBankLoadsAndEveryPuzzleIsSound(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	metas := bank.List()
	if len(metas) == 0 {
		t.Fatal("empty bank")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s := solver.NewBacktrackingSolver()
	c := checker.New()

	for _, m := range metas {
		m := m
		t.Run(m.ID, func(t *testing.T) {
			p, ok := bank.Get(m.ID)
			if !ok {
				t.Fatalf("listed puzzle %s not gettable", m.ID)
			}
			res, err := c.Check(ctx, &p.Board)
			if err != nil || len(res.Conflicts) > 0 {
				t.Fatalf("givens conflict: err=%v conflicts=%v", err, res.Conflicts)
			}
			unique, st, err := s.Unique(ctx, &p.Board)
			if err != nil {
				t.Fatalf("Unique failed: %v", err)
			}
			if !unique {
				t.Fatalf("bank puzzle %s has no unique solution (nodes=%d)", m.ID, st.Nodes)
			}
			// givens must be immutable for the game layer
			for r := 0; r < 9; r++ {
				for col := 0; col < 9; col++ {
					if (p.Board.Values[r][col] != 0) != p.Board.Fixed[r][col] {
						t.Fatalf("fixed mask out of sync at r%dc%d", r, col)
					}
				}
			}
		})
	}
}

func TestBankOrderedEasyFirst(t *testing.T) {
	bank, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	metas := bank.List()
	for i := 1; i < len(metas); i++ {
		if metas[i-1].Difficulty > metas[i].Difficulty {
			t.Fatalf("bank out of order: %v before %v", metas[i-1], metas[i])
		}
	}
	if _, ok := bank.Get("classic"); !ok {
		t.Fatal("bank must ship the classic puzzle")
	}
}

func TestBankNamesFromHeader(t *testing.T) {
	p, err := parseBankFile("hard-sample.txt", "# Display Name\n"+
		"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	if err != nil {
		t.Fatalf("parseBankFile failed: %v", err)
	}
	if p.ID != "sample" || p.Name != "Display Name" || p.Difficulty != domain.Hard {
		t.Fatalf("parsed %+v", p)
	}
}
