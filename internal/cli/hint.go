package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/domain"
)

var hintTier string

func init() {
	hintCmd := &cobra.Command{
		Use:   "hint [puzzle]",
		Short: "Suggest the next logical placement",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHint,
	}
	hintCmd.Flags().StringVar(&hintTier, "tier", "singles", "maximum strategy tier")
	rootCmd.AddCommand(hintCmd)
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func runHint(cmd *cobra.Command, args []string) error {
	uc := service()
	p, err := resolvePuzzle(cmd.Context(), uc, args)
	if err != nil {
		return err
	}
	h, found, err := uc.Hint(cmd.Context(), &p.Board, parseTier(hintTier))
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no hint at this tier; try guessing or raise --tier")
		return nil
	}
	c := h.Cells[0]
	fmt.Printf("%s (r%dc%d)\n", h.Message, c.Row+1, c.Col+1)
	return nil
}
