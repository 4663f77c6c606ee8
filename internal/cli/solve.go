package cli

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/solver"
)

var (
	solveDelay   time.Duration
	solveWatch   bool
	solveAnimate bool
	solveProfile bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle, optionally animating the search",
		Long: `Solve a puzzle with the backtracking solver.

With --watch every placement and removal of the search is printed in order,
paced by --delay, so you can follow how backtracking explores and abandons
candidates. --animate redraws the grid in place instead of scrolling.

Examples:
  sudokulab solve classic
  sudokulab solve --watch --delay 100ms
  sudokulab solve --watch --animate expert-grid.txt
  sudokulab solve '53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().DurationVar(&solveDelay, "delay", solver.DefaultStepDelay, "pause between walkthrough steps")
	solveCmd.Flags().BoolVarP(&solveWatch, "watch", "w", false, "show every solver step")
	solveCmd.Flags().BoolVar(&solveAnimate, "animate", false, "redraw the grid in place (implies --watch)")
	solveCmd.Flags().BoolVar(&solveProfile, "profile", false, "write a CPU profile for the run")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	uc := service()
	ctx := cmd.Context()
	p, err := resolvePuzzle(ctx, uc, args)
	if err != nil {
		return err
	}
	if solveProfile {
		defer profile.Start(profile.ProfilePath(dataDir)).Stop()
	}

	if !solveWatch && !solveAnimate {
		out, st, err := uc.Solve(ctx, &p.Board)
		if err != nil {
			return err
		}
		fmt.Print(out.String())
		logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Microsecond))
		return nil
	}

	const gridLines = 11
	first := true
	onStep := func(s domain.Step) {
		b := domain.Board{Values: s.Board}
		if solveAnimate {
			if !first {
				fmt.Printf("\033[%dA", gridLines+1)
			}
			first = false
			fmt.Print(b.String())
			fmt.Printf("%-24s\n", fmt.Sprintf("%s %d at r%dc%d", s.Kind, s.Value, s.Cell.Row+1, s.Cell.Col+1))
			return
		}
		fmt.Printf("%s %d at r%dc%d\n%s\n", s.Kind, s.Value, s.Cell.Row+1, s.Cell.Col+1, b.String())
	}
	out, st, err := uc.Watch(ctx, &p.Board, solveDelay, onStep)
	if err != nil {
		return err
	}
	if !solveAnimate {
		fmt.Print(out.String())
	}
	logger.Info("solved", "nodes", st.Nodes, "steps", st.Steps, "dur", st.Duration.Round(time.Millisecond))
	return nil
}
