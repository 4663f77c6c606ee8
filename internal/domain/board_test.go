package domain

import (
	"errors"
	"strings"
	"testing"
)

const classic = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(classic)
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[0][4] != 7 || b.Values[8][8] != 9 {
		t.Fatalf("misparsed grid:\n%s", b.String())
	}
	if got := b.EmptyCount(); got != 51 {
		t.Fatalf("EmptyCount = %d, want 51", got)
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	b, err := ParseBoard(classic)
	if err != nil {
		t.Fatalf("ParseBoard failed: %v", err)
	}
	again, err := ParseBoard(b.Compact())
	if err != nil {
		t.Fatalf("reparse of Compact failed: %v", err)
	}
	if again.Values != b.Values {
		t.Fatal("Compact round trip changed the grid")
	}
	pretty, err := ParseBoard(b.String())
	if err != nil {
		t.Fatalf("reparse of String failed: %v", err)
	}
	if pretty.Values != b.Values {
		t.Fatal("String round trip changed the grid")
	}
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"short", strings.Repeat(".", 80)},
		{"long", strings.Repeat(".", 82)},
		{"letter", strings.Repeat(".", 80) + "x"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseBoard(tc.in); !errors.Is(err, ErrBadGrid) {
				t.Fatalf("want ErrBadGrid, got %v", err)
			}
		})
	}
}

func TestMarkGivensAndClone(t *testing.T) {
	b, _ := ParseBoard(classic)
	b.MarkGivens()
	if !b.Fixed[0][0] || b.Fixed[0][2] {
		t.Fatal("MarkGivens mismarked cells")
	}
	cp := b.Clone()
	cp.Values[0][2] = 4
	if b.Values[0][2] != 0 {
		t.Fatal("Clone shares storage with original")
	}
}
