package achievements

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Award is one unlockable achievement.
type Award struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GameResult is what a finished session reports for award evaluation.
type GameResult struct {
	Difficulty domain.Difficulty
	Duration   time.Duration
	Mistakes   int
	HintsUsed  int
}

// Progress is the persisted achievement state.
type Progress struct {
	Unlocked map[string]int64 `json:"unlocked"` // award ID -> unix nanos
	Wins     int              `json:"wins"`
	Streak   int              `json:"streak"` // consecutive flawless wins
}

var catalog = []struct {
	Award
	earned func(p *Progress, res GameResult) bool
}{
	{Award{"first-win", "First Victory", "Finish a puzzle"},
		func(p *Progress, res GameResult) bool { return p.Wins >= 1 }},
	{Award{"flawless", "Flawless", "Win without a single mistake"},
		func(p *Progress, res GameResult) bool { return res.Mistakes == 0 }},
	{Award{"unaided", "No Help Needed", "Win without using hints"},
		func(p *Progress, res GameResult) bool { return res.HintsUsed == 0 }},
	{Award{"speedster", "Speedster", "Win in under five minutes"},
		func(p *Progress, res GameResult) bool { return res.Duration < 5*time.Minute }},
	{Award{"hard-boiled", "Hard-Boiled", "Win a hard puzzle"},
		func(p *Progress, res GameResult) bool { return res.Difficulty >= domain.Hard }},
	{Award{"grandmaster", "Grandmaster", "Win an expert puzzle"},
		func(p *Progress, res GameResult) bool { return res.Difficulty >= domain.Expert }},
	{Award{"hat-trick", "Hat Trick", "Three flawless wins in a row"},
		func(p *Progress, res GameResult) bool { return p.Streak >= 3 }},
	{Award{"devoted", "Devoted", "Win ten puzzles"},
		func(p *Progress, res GameResult) bool { return p.Wins >= 10 }},
}

const (
	bucket = "progress"
	key    = "achievements"
)

// Tracker evaluates awards and persists progress through the storage port.
type Tracker struct {
	store ports.Storage
	prog  Progress
}

func NewTracker(st ports.Storage) *Tracker {
	return &Tracker{store: st, prog: Progress{Unlocked: map[string]int64{}}}
}

// Load pulls persisted progress; a missing record means a fresh player.
func (t *Tracker) Load(ctx context.Context) error {
	var p Progress
	err := t.store.Get(ctx, bucket, key, &p)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if p.Unlocked == nil {
		p.Unlocked = map[string]int64{}
	}
	t.prog = p
	return nil
}

// RecordWin folds a won game into the progress, unlocks any newly earned
// awards, persists, and returns the new unlocks in catalog order.
func (t *Tracker) RecordWin(ctx context.Context, res GameResult) ([]Award, error) {
	t.prog.Wins++
	if res.Mistakes == 0 {
		t.prog.Streak++
	} else {
		t.prog.Streak = 0
	}
	now := time.Now().UnixNano()
	var fresh []Award
	for _, entry := range catalog {
		if _, done := t.prog.Unlocked[entry.ID]; done {
			continue
		}
		if entry.earned(&t.prog, res) {
			t.prog.Unlocked[entry.ID] = now
			fresh = append(fresh, entry.Award)
		}
	}
	if err := t.store.Put(ctx, bucket, key, &t.prog); err != nil {
		return fresh, err
	}
	return fresh, nil
}

// Unlocked lists earned awards in catalog order.
func (t *Tracker) Unlocked() []Award {
	var out []Award
	for _, entry := range catalog {
		if _, ok := t.prog.Unlocked[entry.ID]; ok {
			out = append(out, entry.Award)
		}
	}
	return out
}

// Catalog lists every defined award.
func Catalog() []Award {
	out := make([]Award, len(catalog))
	for i, e := range catalog {
		out[i] = e.Award
	}
	return out
}
