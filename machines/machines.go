package machines

import (
	"time"

	"github.com/reusee/turing/recordings"
	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

// Machine drives a transition table over a caller-supplied tape. It
// owns only its control state and head position; the table is shared
// read-only, and the tape is borrowed for the duration of one run.
type Machine struct {
	table *rules.Table
	state uint64
	head  int64
}

func New(table *rules.Table) *Machine {
	return &Machine{
		table: table,
	}
}

func (m *Machine) Table() *rules.Table {
	return m.table
}

// State is whatever the last applied rule produced, or 0 before any
// step.
func (m *Machine) State() uint64 {
	return m.state
}

// Head is the current head position.
func (m *Machine) Head() int64 {
	return m.head
}

// Reset returns state and head to 0. The table is untouched, and so is
// any tape: callers wanting a clean run must supply a fresh one.
func (m *Machine) Reset() {
	m.state = 0
	m.head = 0
}

// step applies the rule for the current configuration, if any. State
// update, write and head move happen together or not at all.
func (m *Machine) step(tape *tapes.Tape) (rules.Action, bool) {
	action, ok := m.table.Get(m.state, tape.At(m.head))
	if !ok {
		return rules.Action{}, false
	}
	m.state = action.State
	tape.Write(m.head, action.Write)
	if action.Right {
		m.head++
	} else {
		m.head--
	}
	return action, true
}

// Run steps until no rule matches the current (state, symbol). With a
// table that never runs out of matches this does not return.
func (m *Machine) Run(tape *tapes.Tape) {
	for {
		if _, ok := m.step(tape); !ok {
			return
		}
	}
}

// RunWithHaltSetting is Run under an external bound, checked before
// each step attempt.
func (m *Machine) RunWithHaltSetting(tape *tapes.Tape, halt HaltSetting) {
	switch halt.kind {

	case haltAfterSteps:
		for n := uint64(0); n < halt.steps; n++ {
			if _, ok := m.step(tape); !ok {
				return
			}
		}

	case haltAfterDuration:
		start := time.Now()
		for time.Since(start) < halt.duration {
			if _, ok := m.step(tape); !ok {
				return
			}
		}

	default:
		m.Run(tape)
	}
}

// RunAndRecord is Run, additionally logging every applied action. The
// input tape is snapshotted before the first step.
func (m *Machine) RunAndRecord(tape *tapes.Tape) *recordings.Recording {
	rec := m.newRecording(tape)
	for {
		action, ok := m.step(tape)
		if !ok {
			return rec
		}
		rec.Steps = append(rec.Steps, action)
	}
}

// RunWithHaltSettingAndRecord combines RunWithHaltSetting and
// RunAndRecord. The step log length equals the number of steps actually
// applied, possibly zero.
func (m *Machine) RunWithHaltSettingAndRecord(tape *tapes.Tape, halt HaltSetting) *recordings.Recording {
	switch halt.kind {

	case haltAfterSteps:
		rec := m.newRecording(tape)
		for n := uint64(0); n < halt.steps; n++ {
			action, ok := m.step(tape)
			if !ok {
				return rec
			}
			rec.Steps = append(rec.Steps, action)
		}
		return rec

	case haltAfterDuration:
		rec := m.newRecording(tape)
		start := time.Now()
		for time.Since(start) < halt.duration {
			action, ok := m.step(tape)
			if !ok {
				return rec
			}
			rec.Steps = append(rec.Steps, action)
		}
		return rec

	default:
		return m.RunAndRecord(tape)
	}
}

func (m *Machine) newRecording(tape *tapes.Tape) *recordings.Recording {
	return &recordings.Recording{
		Input:     tape.Clone(),
		InitState: m.state,
		InitHead:  m.head,
	}
}
