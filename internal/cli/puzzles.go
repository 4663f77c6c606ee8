package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/achievements"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/puzzles"
)

func init() {
	puzzlesCmd := &cobra.Command{
		Use:   "puzzles",
		Short: "List the built-in puzzle bank and saved games",
		Args:  cobra.NoArgs,
		RunE:  runPuzzles,
	}
	awardsCmd := &cobra.Command{
		Use:   "awards",
		Short: "Show achievements and which you have unlocked",
		Args:  cobra.NoArgs,
		RunE:  runAwards,
	}
	rootCmd.AddCommand(puzzlesCmd, awardsCmd)
}

func runPuzzles(cmd *cobra.Command, args []string) error {
	bank, err := puzzles.Load()
	if err != nil {
		return err
	}
	fmt.Println("bank:")
	for _, m := range bank.List() {
		fmt.Printf("  %-12s %-8s %s\n", m.ID, m.Difficulty, m.Name)
	}
	keys, err := service().ListGames(cmd.Context())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	fmt.Println("saved games:")
	for _, k := range keys {
		fmt.Printf("  %s\n", k)
	}
	return nil
}

func runAwards(cmd *cobra.Command, args []string) error {
	tracker := achievements.NewTracker(storage.NewFS(dataDir))
	if err := tracker.Load(cmd.Context()); err != nil {
		return err
	}
	unlocked := map[string]bool{}
	for _, a := range tracker.Unlocked() {
		unlocked[a.ID] = true
	}
	for _, a := range achievements.Catalog() {
		mark := " "
		if unlocked[a.ID] {
			mark = "x"
		}
		fmt.Printf("[%s] %-14s %s\n", mark, a.Name, a.Description)
	}
	return nil
}
