package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkUnique bool

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [puzzle]",
		Short: "Report completeness, conflicts, and optionally uniqueness",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().BoolVarP(&checkUnique, "unique", "u", false, "also test for a unique solution")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	uc := service()
	ctx := cmd.Context()
	p, err := resolvePuzzle(ctx, uc, args)
	if err != nil {
		return err
	}

	res, err := uc.Check(ctx, &p.Board)
	if err != nil {
		return err
	}
	fmt.Print(p.Board.String())
	switch {
	case res.Valid:
		fmt.Println("complete and valid")
	case res.Complete:
		fmt.Println("complete but has conflicts")
	default:
		fmt.Printf("incomplete: %d cells open\n", p.Board.EmptyCount())
	}
	for _, c := range res.Conflicts {
		fmt.Printf("conflict at r%dc%d (%d)\n", c.Row+1, c.Col+1, p.Board.Values[c.Row][c.Col])
	}

	if checkUnique {
		if len(res.Conflicts) > 0 {
			return fmt.Errorf("uniqueness is undefined while conflicts remain")
		}
		ok, st, err := uc.Unique(ctx, &p.Board)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("solution is unique")
		} else {
			fmt.Println("no unique solution")
		}
		logger.Debug("uniqueness probe", "nodes", st.Nodes, "dur", st.Duration)
	}
	return nil
}
