package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/game"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
)

const savesBucket = "saves"

type Service struct {
	Solver  ports.Solver
	Checker ports.Checker
	Hinter  ports.Hinter
	Storage ports.Storage
}

func NewService(s ports.Solver, c ports.Checker, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Checker: c, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ErrInconsistent rejects boards whose givens already conflict; the solver
// itself does not guard against them.
var ErrInconsistent = errors.New("board givens conflict; fix them before solving")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.precheck(ctx, b); err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, b)
}

// Watch solves with a step-by-step walkthrough delivered to fn, pacing
// emissions by delay. The board is pre-checked so the animation is
// guaranteed to terminate.
func (u *Service) Watch(ctx context.Context, b *domain.Board, delay time.Duration, fn solver.StepFunc) (*domain.Board, ports.Stats, error) {
	if err := u.precheck(ctx, b); err != nil {
		return nil, ports.Stats{}, err
	}
	return solver.NewStepSolver(delay, fn).Solve(ctx, b)
}

// precheck runs the conflict checker over the givens.
func (u *Service) precheck(ctx context.Context, b *domain.Board) error {
	if u.Checker == nil {
		return errNotConfigured
	}
	res, err := u.Checker.Check(ctx, b)
	if err != nil {
		return err
	}
	if len(res.Conflicts) > 0 {
		return ErrInconsistent
	}
	return nil
}

func (u *Service) Check(ctx context.Context, b *domain.Board) (domain.CheckResult, error) {
	if u.Checker == nil {
		return domain.CheckResult{}, errNotConfigured
	}
	return u.Checker.Check(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// Persistence
func (u *Service) SaveGame(ctx context.Context, key string, sv game.Save) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Put(ctx, savesBucket, key, &sv)
}

func (u *Service) LoadGame(ctx context.Context, key string) (game.Save, error) {
	var sv game.Save
	if u.Storage == nil {
		return sv, errNotConfigured
	}
	err := u.Storage.Get(ctx, savesBucket, key, &sv)
	return sv, err
}

func (u *Service) ListGames(ctx context.Context) ([]string, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Keys(ctx, savesBucket)
}
