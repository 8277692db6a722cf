package tapes

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tape := New([]uint64{2, 3, 5})
	if !slices.Equal(tape.Raw(), []uint64{2, 0, 3, 0, 5}) {
		t.Fatalf("unexpected backing: %v", tape.Raw())
	}
}

func TestNewWithCapacity(t *testing.T) {
	if _, err := NewWithCapacity([]uint64{23, 1, 0, 49}, 6); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if _, err := NewWithCapacity([]uint64{0, 1}, 1); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}

	tape, err := NewWithCapacity([]uint64{23, 1, 0, 49}, 20)
	if err != nil {
		t.Fatal(err)
	}
	if cap(tape.Raw()) < 20 {
		t.Fatalf("capacity not reserved: %d", cap(tape.Raw()))
	}
	if !tape.Equal(New([]uint64{23, 1, 0, 49})) {
		t.Fatal("content differs from New")
	}

	// empty input needs no slots
	if _, err := NewWithCapacity(nil, 0); err != nil {
		t.Fatal(err)
	}
}

func TestEqual(t *testing.T) {
	tape1 := New([]uint64{23, 1, 0, 49})
	tape2 := New([]uint64{23, 1, 0, 49, 0})
	if !tape1.Equal(tape2) {
		t.Fatal("trailing blanks must not affect equality")
	}

	tape3 := New([]uint64{0, 0, 23, 1, 0, 49})
	if tape1.Symbols() == nil || !slices.Equal(tape1.Symbols(), tape3.Symbols()) {
		t.Fatal("leading blanks must not affect canonical content")
	}

	if tape1.Equal(New([]uint64{23, 1, 49})) {
		t.Fatal("different content compared equal")
	}
}

func TestWriteAndAt(t *testing.T) {
	tape := New([]uint64{0, 22, 3})
	tape.Write(-2, 73)
	tape.Write(59, 12)

	for p, want := range map[int64]uint64{
		0:        0,
		-2:       73,
		-1:       0,
		-3:       0,
		1:        22,
		2:        3,
		59:       12,
		32193824: 0,
	} {
		if got := tape.At(p); got != want {
			t.Errorf("At(%d) = %d, want %d", p, got, want)
		}
	}
}

func TestSymbols(t *testing.T) {
	tape := New([]uint64{3, 34343, 1, 0, 25})
	tape.Write(-7, 946)

	if !slices.Equal(tape.Raw(), []uint64{3, 0, 34343, 0, 1, 0, 0, 0, 25, 0, 0, 0, 0, 946}) {
		t.Fatalf("unexpected backing: %v", tape.Raw())
	}
	if !slices.Equal(tape.Symbols(), []uint64{946, 0, 0, 0, 0, 0, 0, 3, 34343, 1, 0, 25}) {
		t.Fatalf("unexpected canonical content: %v", tape.Symbols())
	}

	if (&Tape{}).Symbols() != nil {
		t.Fatal("blank tape must have empty canonical content")
	}
}

func TestPositions(t *testing.T) {
	tape := New([]uint64{0, 2, 2, 0, 2, 3, 2})
	tape.Write(-1, 0)
	tape.Write(-2, 2)
	tape.Write(-3, 2)
	tape.Write(-4, 12)

	if got := tape.Positions(2); !slices.Equal(got, []int64{-3, -2, 1, 2, 4, 6}) {
		t.Fatalf("Positions(2) = %v", got)
	}
	if got := tape.Positions(12); !slices.Equal(got, []int64{-4}) {
		t.Fatalf("Positions(12) = %v", got)
	}
	if got := tape.Positions(7); got != nil {
		t.Fatalf("Positions(7) = %v", got)
	}
}

func TestClone(t *testing.T) {
	tape := New([]uint64{1, 2, 3})
	clone := tape.Clone()
	clone.Write(0, 9)
	clone.Write(-10, 4)
	if tape.At(0) != 1 || tape.At(-10) != 0 {
		t.Fatal("clone writes leaked into the original")
	}
	if !tape.Equal(New([]uint64{1, 2, 3})) {
		t.Fatal("original changed")
	}
}
