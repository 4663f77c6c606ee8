package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokulab/internal/achievements"
	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/game"
	"svw.info/sudokulab/internal/infrastructure/storage"
	"svw.info/sudokulab/internal/usecase"
)

var playResume string

func init() {
	playCmd := &cobra.Command{
		Use:   "play [puzzle]",
		Short: "Play a puzzle interactively",
		Long: `Play a puzzle in a small REPL. Rows and columns are 1-9.

Commands:
  place R C V    write V at row R, column C
  mark R C V     toggle pencil mark V
  erase R C      clear a cell
  undo / redo    step through your edit history
  check          show conflicts and completeness
  hint           ask for the next single (counts against you)
  board          reprint the grid
  save [key]     save the session
  quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}
	playCmd.Flags().StringVar(&playResume, "resume", "", "resume a saved game by key")
	rootCmd.AddCommand(playCmd)
}

// repl bundles what one interactive game needs.
type repl struct {
	uc      *usecase.Service
	sess    *game.Session
	tracker *achievements.Tracker
	out     io.Writer
}

var errQuit = errors.New("quit")

func runPlay(cmd *cobra.Command, args []string) error {
	uc := service()
	ctx := cmd.Context()

	var sess *game.Session
	if playResume != "" {
		sv, err := uc.LoadGame(ctx, playResume)
		if err != nil {
			return err
		}
		sess = game.Restore(sv)
	} else {
		p, err := resolvePuzzle(ctx, uc, args)
		if err != nil {
			return err
		}
		sess = game.New(p)
	}

	tracker := achievements.NewTracker(storage.NewFS(dataDir))
	if err := tracker.Load(ctx); err != nil {
		logger.Warn("achievements unavailable", "err", err)
	}

	g := &repl{uc: uc, sess: sess, tracker: tracker, out: cmd.OutOrStdout()}
	fmt.Fprintf(g.out, "%s (%s)\n%s", sess.Puzzle().Name, sess.Puzzle().Difficulty, sess.Board().String())

	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(g.out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		won, err := g.handle(ctx, sc.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintln(g.out, err)
		case won:
			return g.finish(ctx)
		}
	}
}

// handle runs one REPL line; the bool reports a completed, valid grid.
func (g *repl) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, rest := fields[0], fields[1:]
	switch name {
	case "quit", "q", "exit":
		return false, errQuit
	case "board":
		fmt.Fprint(g.out, g.sess.Board().String())
	case "undo":
		if err := g.sess.Undo(); err != nil {
			return false, err
		}
		fmt.Fprint(g.out, g.sess.Board().String())
	case "redo":
		if err := g.sess.Redo(); err != nil {
			return false, err
		}
		fmt.Fprint(g.out, g.sess.Board().String())
	case "place", "p":
		r, c, v, err := cellArgs(rest, true)
		if err != nil {
			return false, err
		}
		if err := g.sess.Place(r, c, v); err != nil {
			return false, err
		}
		fmt.Fprint(g.out, g.sess.Board().String())
		return g.report(ctx, false)
	case "mark", "m":
		r, c, v, err := cellArgs(rest, true)
		if err != nil {
			return false, err
		}
		if err := g.sess.ToggleMark(r, c, v); err != nil {
			return false, err
		}
		fmt.Fprintf(g.out, "marks r%dc%d: %s\n", r+1, c+1, marksString(g.sess.Marks(r, c)))
	case "erase", "e":
		r, c, _, err := cellArgs(rest, false)
		if err != nil {
			return false, err
		}
		if err := g.sess.Erase(r, c); err != nil {
			return false, err
		}
		fmt.Fprint(g.out, g.sess.Board().String())
	case "check":
		return g.report(ctx, true)
	case "hint":
		h, found, err := g.uc.Hint(ctx, g.sess.Board(), domain.StrategySingles)
		if err != nil {
			return false, err
		}
		if !found {
			fmt.Fprintln(g.out, "no single available; you are on your own")
			return false, nil
		}
		g.sess.NoteHint()
		c := h.Cells[0]
		fmt.Fprintf(g.out, "%s (r%dc%d)\n", h.Message, c.Row+1, c.Col+1)
	case "save":
		key := storage.NewKey()
		if len(rest) > 0 {
			key = rest[0]
		}
		if err := g.uc.SaveGame(ctx, key, g.sess.Snapshot()); err != nil {
			return false, err
		}
		fmt.Fprintf(g.out, "saved as %s (resume with --resume %s)\n", key, key)
	default:
		return false, fmt.Errorf("unknown command %q (try: place, mark, erase, undo, redo, check, hint, save, quit)", name)
	}
	return false, nil
}

// report prints the check verdict; verbose also lists conflicts.
func (g *repl) report(ctx context.Context, verbose bool) (bool, error) {
	res, err := g.uc.Check(ctx, g.sess.Board())
	if err != nil {
		return false, err
	}
	if res.Valid {
		return true, nil
	}
	if verbose || len(res.Conflicts) > 0 {
		fmt.Fprintf(g.out, "open cells: %d, conflicts: %d, mistakes: %d\n",
			g.sess.Board().EmptyCount(), len(res.Conflicts), g.sess.Mistakes())
		for _, p := range res.Conflicts {
			fmt.Fprintf(g.out, "  r%dc%d\n", p.Row+1, p.Col+1)
		}
	}
	return false, nil
}

// finish congratulates and records achievements for a won game.
func (g *repl) finish(ctx context.Context) error {
	elapsed := g.sess.Elapsed()
	fmt.Fprintf(g.out, "solved! time %s, mistakes %d, hints %d\n",
		elapsed.Round(time.Second), g.sess.Mistakes(), g.sess.HintsUsed())
	fresh, err := g.tracker.RecordWin(ctx, achievements.GameResult{
		Difficulty: g.sess.Puzzle().Difficulty,
		Duration:   elapsed,
		Mistakes:   g.sess.Mistakes(),
		HintsUsed:  g.sess.HintsUsed(),
	})
	if err != nil {
		logger.Warn("could not persist achievements", "err", err)
	}
	for _, a := range fresh {
		fmt.Fprintf(g.out, "achievement unlocked: %s — %s\n", a.Name, a.Description)
	}
	return nil
}

func cellArgs(args []string, withValue bool) (r, c int, v uint8, err error) {
	want := 2
	if withValue {
		want = 3
	}
	if len(args) != want {
		return 0, 0, 0, fmt.Errorf("want %d numbers in 1-9", want)
	}
	nums := make([]int, len(args))
	for i, a := range args {
		n, convErr := strconv.Atoi(a)
		if convErr != nil || n < 1 || n > 9 {
			return 0, 0, 0, fmt.Errorf("%q is not in 1-9", a)
		}
		nums[i] = n
	}
	r, c = nums[0]-1, nums[1]-1
	if withValue {
		v = uint8(nums[2])
	}
	return r, c, v, nil
}

func marksString(m uint16) string {
	var sb strings.Builder
	for v := uint8(1); v <= 9; v++ {
		if m&(1<<v) != 0 {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + v)
		}
	}
	if sb.Len() == 0 {
		return "(none)"
	}
	return sb.String()
}
