package rules

import (
	"fmt"
	"math/big"
	"testing"
)

func TestAllSmallest(t *testing.T) {
	var tables []*Table
	for table := range All(1, 1) {
		tables = append(tables, table)
	}
	if len(tables) != 3 {
		t.Fatalf("expected 3 tables over a 1x1 alphabet, got %d", len(tables))
	}

	// empty table, then (0,0)→(0,0,L), then (0,0)→(0,0,R)
	if tables[0].Len() != 0 {
		t.Fatal("first table should be empty")
	}
	left, ok := tables[1].Get(0, 0)
	if !ok || left != (Action{0, 0, false}) {
		t.Fatalf("second table: %v %v", left, ok)
	}
	right, ok := tables[2].Get(0, 0)
	if !ok || right != (Action{0, 0, true}) {
		t.Fatalf("third table: %v %v", right, ok)
	}
}

func TestAllMatchesCount(t *testing.T) {
	for _, c := range []struct {
		states, symbols uint64
	}{
		{1, 1},
		{1, 2},
		{2, 1},
		{2, 2},
	} {
		n := int64(0)
		seen := make(map[string]bool)
		for table := range All(c.states, c.symbols) {
			n++
			key := fmt.Sprintf("%v", table.Rules())
			if seen[key] {
				t.Fatalf("%dx%d: duplicate table yielded", c.states, c.symbols)
			}
			seen[key] = true
		}
		if want := Count(c.states, c.symbols); want.Cmp(big.NewInt(n)) != 0 {
			t.Fatalf("%dx%d: yielded %d tables, Count says %s", c.states, c.symbols, n, want)
		}
	}
}

func TestAllActionsInRange(t *testing.T) {
	for table := range All(2, 2) {
		for _, r := range table.Rules() {
			if r.Then.State > 1 || r.Then.Write > 1 {
				t.Fatalf("action out of alphabet: %v", r.Then)
			}
		}
	}
}

func TestCountDegenerate(t *testing.T) {
	if Count(0, 5).Cmp(big.NewInt(1)) != 0 {
		t.Fatal("zero states should give exactly the empty table")
	}
	n := 0
	for range All(0, 5) {
		n++
	}
	if n != 1 {
		t.Fatalf("All(0, 5) yielded %d tables", n)
	}
}
