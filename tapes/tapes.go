package tapes

import (
	"errors"
	"fmt"
	"slices"
)

// Tape is a bi-infinite sequence of symbols addressed by signed
// position, all blank (0) until written. One growable slice backs both
// directions via the position folding in fold.go, so memory stays
// proportional to the farthest position written, whichever the
// direction.
//
// A tape is exclusively owned by the caller driving a run; machines
// borrow it for the duration of a run and do not retain it.
type Tape struct {
	cells []uint64
}

var ErrCapacity = errors.New("capacity too small")

// New places input[i] at position i, counting up from 0.
func New(input []uint64) *Tape {
	t := &Tape{}
	for i, s := range input {
		t.Write(int64(i), s)
	}
	return t
}

// NewWithCapacity is New with at least capacity backing slots
// pre-reserved. The input occupies folded slots up to 2*len(input)-1,
// so requesting less than that is a caller error, rejected before
// anything is built.
func NewWithCapacity(input []uint64, capacity int) (*Tape, error) {
	if len(input) > 0 && capacity < 2*len(input)-1 {
		return nil, fmt.Errorf("%w: %d slots for %d input symbols, need at least %d",
			ErrCapacity, capacity, len(input), 2*len(input)-1)
	}
	t := &Tape{
		cells: make([]uint64, 0, capacity),
	}
	for i, s := range input {
		t.Write(int64(i), s)
	}
	return t, nil
}

// At returns the symbol at position p. Never-written positions,
// including those beyond the backing slice, read as blank.
func (t *Tape) At(p int64) uint64 {
	idx := positionToIndex(p)
	if idx >= len(t.cells) {
		return 0
	}
	return t.cells[idx]
}

// Write stores symbol at position p, growing the backing slice when p
// folds beyond it.
func (t *Tape) Write(p int64, symbol uint64) {
	idx := positionToIndex(p)
	if idx >= len(t.cells) {
		t.grow(idx + 1)
	}
	t.cells[idx] = symbol
}

func (t *Tape) grow(n int) {
	if n <= cap(t.cells) {
		// the backing array came from make, so the tail is zeroed
		t.cells = t.cells[:n]
		return
	}
	newCap := cap(t.cells) * 2
	if newCap < 8 {
		newCap = 8
	}
	for newCap < n {
		newCap *= 2
	}
	cells := make([]uint64, n, newCap)
	copy(cells, t.cells)
	t.cells = cells
}

// Symbols returns the canonical content: every cell from the lowest to
// the highest non-blank position, in position order, with no leading or
// trailing blanks. An all-blank tape yields nil.
func (t *Tape) Symbols() []uint64 {
	var lo, hi int64
	found := false
	for idx, s := range t.cells {
		if s == 0 {
			continue
		}
		p := indexToPosition(idx)
		if !found {
			lo, hi = p, p
			found = true
			continue
		}
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	if !found {
		return nil
	}
	out := make([]uint64, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, t.At(p))
	}
	return out
}

// Positions returns every written position holding symbol, ascending.
func (t *Tape) Positions(symbol uint64) []int64 {
	var out []int64
	for idx, s := range t.cells {
		if s == symbol {
			out = append(out, indexToPosition(idx))
		}
	}
	slices.Sort(out)
	return out
}

// Equal reports logical content equality: two tapes are equal iff their
// canonical symbol sequences match, regardless of backing length.
func (t *Tape) Equal(other *Tape) bool {
	return slices.Equal(t.Symbols(), other.Symbols())
}

// Clone returns an independent copy.
func (t *Tape) Clone() *Tape {
	// allocate exactly, so grow keeps its zeroed-tail assumption
	cells := make([]uint64, len(t.cells))
	copy(cells, t.cells)
	return &Tape{
		cells: cells,
	}
}

// Raw exposes the folded backing slice.
func (t *Tape) Raw() []uint64 {
	return t.cells
}
