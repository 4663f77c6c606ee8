package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokulab/internal/domain"
)

func TestStepSolverTraceReplaysSearch(t *testing.T) {
	var trace []domain.Step
	s := NewStepSolver(0, func(st domain.Step) { trace = append(trace, st) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, stats, err := s.Solve(ctx, &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(trace) == 0 {
		t.Fatal("no steps emitted")
	}
	if stats.Steps != len(trace) {
		t.Fatalf("stats.Steps=%d but %d steps delivered", stats.Steps, len(trace))
	}

	// replay the trace over the starting grid; every event must be
	// consistent with its own snapshot, every removal must undo the
	// most recent unmatched placement
	grid := sample
	var stack []domain.Step
	for i, st := range trace {
		r, c := st.Cell.Row, st.Cell.Col
		switch st.Kind {
		case domain.StepPlace:
			if grid[r][c] != 0 {
				t.Fatalf("step %d places into occupied cell r%dc%d", i, r, c)
			}
			grid[r][c] = st.Value
			stack = append(stack, st)
		case domain.StepRemove:
			if len(stack) == 0 {
				t.Fatalf("step %d removes with nothing placed", i)
			}
			top := stack[len(stack)-1]
			if top.Cell != st.Cell || top.Value != st.Value {
				t.Fatalf("step %d removes %d at r%dc%d, but last placement was %d at r%dc%d",
					i, st.Value, r, c, top.Value, top.Cell.Row, top.Cell.Col)
			}
			grid[r][c] = 0
			stack = stack[:len(stack)-1]
		}
		if grid != st.Board {
			t.Fatalf("step %d snapshot does not match replayed board", i)
		}
	}
	if grid != out.Values {
		t.Fatal("replayed trace does not end at the returned solution")
	}
	if out.Values != sampleSolved {
		t.Fatal("wrong completion")
	}
}

func TestStepSolverNilCallback(t *testing.T) {
	out, stats, err := NewStepSolver(0, nil).Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if stats.Steps != 0 {
		t.Fatalf("nil callback should emit nothing, got %d steps", stats.Steps)
	}
	if out.Values != sampleSolved {
		t.Fatal("wrong completion")
	}
}

func TestStepSolverDelayPacing(t *testing.T) {
	const delay = 5 * time.Millisecond
	steps := 0
	s := NewStepSolver(delay, func(domain.Step) { steps++ })

	// a board with exactly one empty cell -> exactly one placement
	grid := sampleSolved
	grid[4][4] = 0
	start := time.Now()
	_, _, err := s.Solve(context.Background(), &domain.Board{Values: grid})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if steps != 1 {
		t.Fatalf("want exactly 1 step, got %d", steps)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("delay not honored: ran in %v", elapsed)
	}
}

func TestStepSolverCancelStopsEmission(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	emitted := 0
	s := NewStepSolver(0, func(domain.Step) {
		emitted++
		if emitted == 10 {
			cancel()
		}
	})
	_, _, err := s.Solve(ctx, &domain.Board{Values: sample})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable after cancel, got %v", err)
	}
	if emitted > 11 {
		t.Fatalf("steps kept flowing after cancel: %d", emitted)
	}
}
