package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrBadGrid reports malformed textual board input.
var ErrBadGrid = errors.New("malformed grid: want 81 cells of 1-9 or . 0 _")

// ParseBoard reads a board from text. Whitespace and box-drawing characters
// are ignored; the remaining runes must be exactly 81 cells where digits
// 1-9 are values and '.', '0' or '_' mark empties.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	n := 0
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '|' || r == '+' || r == '-':
			continue
		case r == '.' || r == '0' || r == '_':
			if n >= 81 {
				return nil, ErrBadGrid
			}
			n++
		case r >= '1' && r <= '9':
			if n >= 81 {
				return nil, ErrBadGrid
			}
			b.Values[n/9][n%9] = uint8(r - '0')
			n++
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrBadGrid, r)
		}
	}
	if n != 81 {
		return nil, fmt.Errorf("%w: got %d cells", ErrBadGrid, n)
	}
	return b, nil
}

// String renders the board as a grid with box rules, empties as dots.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact returns the 81-character single-line form, empties as dots.
func (b *Board) Compact() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// MarkGivens fixes every currently filled cell as a given.
func (b *Board) MarkGivens() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}

// EmptyCount reports how many cells are unfilled.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}
