package cli

import (
	"context"
	"fmt"
	"os"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/game"
	"svw.info/sudokulab/internal/puzzles"
	"svw.info/sudokulab/internal/usecase"
)

// resolvePuzzle turns a command argument into a puzzle. The argument may be
// a bank ID, a saved-game key, a file path, or a literal grid (81 cells,
// dots for empties). A resolved save carries the player's current board,
// not the pristine one. With no argument the classic bank puzzle is used.
func resolvePuzzle(ctx context.Context, uc *usecase.Service, args []string) (domain.Puzzle, error) {
	bank, err := puzzles.Load()
	if err != nil {
		return domain.Puzzle{}, err
	}
	if len(args) == 0 {
		if p, ok := bank.Get("classic"); ok {
			return p, nil
		}
		return domain.Puzzle{}, fmt.Errorf("no puzzle given and bank has no classic")
	}
	arg := args[0]
	if p, ok := bank.Get(arg); ok {
		return p, nil
	}
	if sv, err := uc.LoadGame(ctx, arg); err == nil {
		p := sv.Puzzle
		p.Board = *game.Restore(sv).Board()
		return p, nil
	}
	if data, err := os.ReadFile(arg); err == nil {
		b, perr := domain.ParseBoard(string(data))
		if perr != nil {
			return domain.Puzzle{}, fmt.Errorf("%s: %w", arg, perr)
		}
		b.MarkGivens()
		return domain.Puzzle{ID: arg, Name: arg, Board: *b}, nil
	}
	b, perr := domain.ParseBoard(arg)
	if perr != nil {
		return domain.Puzzle{}, fmt.Errorf("%q is not a bank ID, save key, file, or grid: %w", arg, perr)
	}
	b.MarkGivens()
	return domain.Puzzle{ID: "adhoc", Name: "ad hoc", Board: *b}, nil
}
