package configs

import (
	"fmt"
	"time"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

// Schema validates machine definition files. Definitions live under the
// top-level "machines" list.
const Schema = `
machines: [...{
	name?: string
	rules: [...{
		state: uint64
		read:  uint64
		next:  uint64
		write: uint64
		move:  "L" | "R"
	}]
	input?: [...uint64]
	halt?: {
		steps?:  uint64
		millis?: uint64
	}
}]
`

// Definition is one machine as found in definition files: a rule table,
// an optional input tape, and an optional halt bound.
type Definition struct {
	Name  string    `json:"name"`
	Rules []DefRule `json:"rules"`
	Input []uint64  `json:"input"`
	Halt  DefHalt   `json:"halt"`
}

type DefRule struct {
	State uint64 `json:"state"`
	Read  uint64 `json:"read"`
	Next  uint64 `json:"next"`
	Write uint64 `json:"write"`
	Move  string `json:"move"`
}

type DefHalt struct {
	Steps  *uint64 `json:"steps"`
	Millis *uint64 `json:"millis"`
}

// Table builds the transition table, rejecting unknown moves and
// duplicate (state, read) pairs.
func (d *Definition) Table() (*rules.Table, error) {
	rs := make([]rules.Rule, 0, len(d.Rules))
	for _, r := range d.Rules {
		switch r.Move {
		case "L", "R":
		default:
			return nil, fmt.Errorf("definition %q: bad move %q, want L or R", d.Name, r.Move)
		}
		rs = append(rs, rules.Rule{
			When: rules.Key{State: r.State, Symbol: r.Read},
			Then: rules.Action{State: r.Next, Write: r.Write, Right: r.Move == "R"},
		})
	}
	table, err := rules.NewTable(rs)
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", d.Name, err)
	}
	return table, nil
}

// Tape returns a fresh input tape.
func (d *Definition) Tape() *tapes.Tape {
	return tapes.New(d.Input)
}

// HaltSetting maps the halt clause; steps win over millis when both are
// present, and absence means no forced halt.
func (d *Definition) HaltSetting() machines.HaltSetting {
	switch {
	case d.Halt.Steps != nil:
		return machines.AfterSteps(*d.Halt.Steps)
	case d.Halt.Millis != nil:
		return machines.AfterDuration(time.Duration(*d.Halt.Millis) * time.Millisecond)
	}
	return machines.NoForcedHalt()
}

// LoadDefinitions reads and validates every machine definition in the
// given CUE files.
func LoadDefinitions(filePaths []string) ([]Definition, error) {
	loader := NewLoader(filePaths, Schema)
	var defs []Definition
	for value, err := range loader.IterCueValues("machines") {
		if err != nil {
			return nil, err
		}
		var vs []Definition
		if err := value.Decode(&vs); err != nil {
			return nil, err
		}
		defs = append(defs, vs...)
	}
	return defs, nil
}
