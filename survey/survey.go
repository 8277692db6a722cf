package survey

import (
	"context"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

// Result classifies every machine over one alphabet after bounded runs
// from a blank tape.
type Result struct {
	// Tables is the number of transition tables enumerated.
	Tables uint64
	// Halted counts machines that ran out of matching rules within the
	// step bound.
	Halted uint64
	// HaltedInMax counts the halted machines whose final control state
	// is the maximal state of the alphabet. Reading that state as
	// "accepting" is this harness's interpretation, not the machine's.
	HaltedInMax uint64
	// Forced counts machines stopped by the step bound with a rule
	// still available.
	Forced uint64
}

// one Machine per table; the blank tape is fresh per run, tables are
// never shared mutably.
func run(ctx context.Context, states, symbols, maxSteps uint64) (Result, error) {
	var res Result
	if states == 0 {
		return res, nil
	}
	maxState := states - 1

	for table := range rules.All(states, symbols) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Tables++

		machine := machines.New(table)
		tape := tapes.New(nil)
		machine.RunWithHaltSetting(tape, machines.AfterSteps(maxSteps))

		if _, ok := table.Get(machine.State(), tape.At(machine.Head())); ok {
			res.Forced++
			continue
		}
		res.Halted++
		if machine.State() == maxState {
			res.HaltedInMax++
		}
	}
	return res, nil
}
