// Package puzzles ships a small starter bank so the game is playable
// without any generator. Files are named <difficulty>-<id>.txt; a leading
// "# " line carries the display name, the rest is the grid.
package puzzles

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"svw.info/sudokulab/internal/domain"
)

//go:embed bank/*.txt
var bankFS embed.FS

// Bank is the in-memory index of the embedded puzzles.
type Bank struct {
	byID  map[string]domain.Puzzle
	metas []domain.PuzzleMeta
}

// Load parses every embedded puzzle. A malformed bank file is a build
// defect, so Load fails loudly rather than skipping.
func Load() (*Bank, error) {
	ents, err := bankFS.ReadDir("bank")
	if err != nil {
		return nil, err
	}
	b := &Bank{byID: map[string]domain.Puzzle{}}
	for _, e := range ents {
		data, err := bankFS.ReadFile(path.Join("bank", e.Name()))
		if err != nil {
			return nil, err
		}
		p, err := parseBankFile(e.Name(), string(data))
		if err != nil {
			return nil, err
		}
		b.byID[p.ID] = p
		b.metas = append(b.metas, domain.PuzzleMeta{
			ID: p.ID, Name: p.Name, Difficulty: p.Difficulty,
		})
	}
	sort.Slice(b.metas, func(i, j int) bool {
		if b.metas[i].Difficulty != b.metas[j].Difficulty {
			return b.metas[i].Difficulty < b.metas[j].Difficulty
		}
		return b.metas[i].ID < b.metas[j].ID
	})
	return b, nil
}

func parseBankFile(name, data string) (domain.Puzzle, error) {
	base := strings.TrimSuffix(name, ".txt")
	diffLabel, id, ok := strings.Cut(base, "-")
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("bank file %s: want <difficulty>-<id>.txt", name)
	}
	var title string
	var grid strings.Builder
	for _, line := range strings.Split(data, "\n") {
		if rest, isComment := strings.CutPrefix(line, "#"); isComment {
			if title == "" {
				title = strings.TrimSpace(rest)
			}
			continue
		}
		grid.WriteString(line)
		grid.WriteByte('\n')
	}
	board, err := domain.ParseBoard(grid.String())
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("bank file %s: %w", name, err)
	}
	board.MarkGivens()
	if title == "" {
		title = id
	}
	return domain.Puzzle{
		ID:         id,
		Name:       title,
		Difficulty: domain.ParseDifficulty(diffLabel),
		Board:      *board,
	}, nil
}

// Get returns the bank puzzle with the given ID.
func (b *Bank) Get(id string) (domain.Puzzle, bool) {
	p, ok := b.byID[id]
	return p, ok
}

// List returns bank entries ordered by difficulty then ID.
func (b *Bank) List() []domain.PuzzleMeta {
	out := make([]domain.PuzzleMeta, len(b.metas))
	copy(out, b.metas)
	return out
}
