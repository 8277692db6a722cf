package rules

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Key identifies a machine configuration: the control state together
// with the symbol under the head.
type Key struct {
	State  uint64
	Symbol uint64
}

// Action is what a matched rule does: enter State, write Write at the
// head, then move one position right (Right true) or left.
type Action struct {
	State uint64
	Write uint64
	Right bool
}

// Rule maps one Key to one Action.
type Rule struct {
	When Key
	Then Action
}

var ErrDuplicateRule = errors.New("duplicate rule")

// Table is a deterministic transition table. It is immutable once built
// and may be shared read-only by any number of machines.
//
// Lookup is a plain map access on the composite key; hit and miss cost
// the same. The original design hashed (state, symbol) through a Cantor
// pairing function, which it documents as a replaceable performance
// detail; Go maps hash struct keys by value already.
type Table struct {
	actions map[Key]Action
}

// NewTable builds a table from rules, rejecting any key that appears
// more than once. Determinism is enforced here, not at lookup time.
func NewTable(rs []Rule) (*Table, error) {
	actions := make(map[Key]Action, len(rs))
	for _, r := range rs {
		if _, ok := actions[r.When]; ok {
			return nil, fmt.Errorf("%w: state %d, symbol %d",
				ErrDuplicateRule, r.When.State, r.When.Symbol)
		}
		actions[r.When] = r.Then
	}
	return &Table{
		actions: actions,
	}, nil
}

// Get returns the action for (state, symbol). A missing entry is the
// machine's halting signal, not an error.
func (t *Table) Get(state, symbol uint64) (Action, bool) {
	action, ok := t.actions[Key{State: state, Symbol: symbol}]
	return action, ok
}

func (t *Table) Len() int {
	return len(t.actions)
}

// Rules returns the table contents sorted by state, then symbol.
func (t *Table) Rules() []Rule {
	rs := make([]Rule, 0, len(t.actions))
	for k, a := range t.actions {
		rs = append(rs, Rule{When: k, Then: a})
	}
	slices.SortFunc(rs, func(a, b Rule) int {
		if c := cmp.Compare(a.When.State, b.When.State); c != 0 {
			return c
		}
		return cmp.Compare(a.When.Symbol, b.When.Symbol)
	})
	return rs
}
