package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// DefaultStepDelay paces walkthrough animation when the caller does not
// choose a delay.
const DefaultStepDelay = 50 * time.Millisecond

// StepFunc receives solver trace events. It is called synchronously from
// the search goroutine, strictly in search order.
type StepFunc func(domain.Step)

// StepSolver runs the same search as BacktrackingSolver but emits a Step
// after every placement and every removal, waiting Delay between steps so a
// rendering layer can animate the walkthrough. A zero or negative Delay
// emits at full speed. Cancel the context to abandon a run; no further
// steps are emitted once it is done.
type StepSolver struct {
	Delay  time.Duration
	OnStep StepFunc
}

// NewStepSolver wires a walkthrough solver. fn may be nil, which reduces
// Solve to the plain recursive search.
func NewStepSolver(delay time.Duration, fn StepFunc) *StepSolver {
	return &StepSolver{Delay: delay, OnStep: fn}
}

// Solve searches a private copy of b, emitting trace steps along the way.
// Error and result semantics match BacktrackingSolver.Solve.
func (s *StepSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes, steps := 0, 0

	emit := func(kind domain.StepKind, r, c int, v uint8) {
		if s.OnStep == nil || ctx.Err() != nil {
			return
		}
		steps++
		s.OnStep(domain.Step{
			Kind:  kind,
			Cell:  domain.CellCoord{Row: r, Col: c},
			Value: v,
			Board: grid,
		})
		if s.Delay > 0 {
			t := time.NewTimer(s.Delay)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
			}
		}
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlaceGrid(&grid, r, c, v) {
				grid[r][c] = v
				emit(domain.StepPlace, r, c, v)
				if dfs() {
					return true
				}
				grid[r][c] = 0
				emit(domain.StepRemove, r, c, v)
			}
		}
		return false
	}
	st := func() ports.Stats {
		return ports.Stats{Nodes: nodes, Steps: steps, Duration: time.Since(start)}
	}
	if !dfs() {
		return nil, st(), ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, st(), nil
}

// Unique delegates to the plain solver; uniqueness probing has no
// walkthrough value and should not be paced.
func (s *StepSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return (&BacktrackingSolver{}).Unique(ctx, b)
}
