package ports

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokulab/internal/domain"
)

// ErrNotFound is returned by Storage.Get for a missing key.
var ErrNotFound = errors.New("not found")

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Steps    int
	Duration time.Duration
}

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Checker performs the full-board completeness/conflict analysis.
type Checker interface {
	Check(ctx context.Context, b *domain.Board) (domain.CheckResult, error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage is a simple bucketed key-value store for JSON documents.
type Storage interface {
	Put(ctx context.Context, bucket, key string, v any) error
	Get(ctx context.Context, bucket, key string, v any) error
	Delete(ctx context.Context, bucket, key string) error
	Keys(ctx context.Context, bucket string) ([]string, error)
}
