package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/checker"
	"svw.info/sudokulab/internal/hint"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
)

var (
	dataDir  string
	logLevel string

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "sudokulab",
	Short: "Sudoku trainer with an animated solver walkthrough",
	Long: `sudokulab is a terminal Sudoku trainer: solve puzzles step by step,
watch the backtracking search work, get single-cell hints, and collect
achievements as you play.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := slog.LevelInfo
		switch strings.ToLower(logLevel) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "directory for saves and progress")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

// service wires the default providers the way the commands need them.
func service() *usecase.Service {
	return usecase.NewService(
		solver.NewBacktrackingSolver(),
		checker.New(),
		hint.NewSingles(),
		storage.NewFS(dataDir),
	)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
