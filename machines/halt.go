package machines

import (
	"fmt"
	"time"
)

// HaltSetting is an external bound on a run. The zero value is
// NoForcedHalt: the machine runs until no rule matches.
//
// Bounded settings stop before attempting a step once the bound is
// reached; they never roll back a step already applied, and a bounded
// halt is not an error.
type HaltSetting struct {
	kind     haltKind
	steps    uint64
	duration time.Duration
}

type haltKind uint8

const (
	haltNever haltKind = iota
	haltAfterSteps
	haltAfterDuration
)

// NoForcedHalt runs until the table has no matching rule. Whether that
// ever happens is the caller's problem.
func NoForcedHalt() HaltSetting {
	return HaltSetting{}
}

// AfterSteps applies at most n steps. Only steps actually applied
// count.
func AfterSteps(n uint64) HaltSetting {
	return HaltSetting{
		kind:  haltAfterSteps,
		steps: n,
	}
}

// AfterDuration stops once d has elapsed since the run began. The clock
// is sampled once at run start and checked before each step attempt, so
// a slow step can overrun the bound by its own cost; the check never
// preempts a step in flight.
func AfterDuration(d time.Duration) HaltSetting {
	return HaltSetting{
		kind:     haltAfterDuration,
		duration: d,
	}
}

func (h HaltSetting) String() string {
	switch h.kind {
	case haltAfterSteps:
		return fmt.Sprintf("halt after %d steps", h.steps)
	case haltAfterDuration:
		return fmt.Sprintf("halt after %v", h.duration)
	}
	return "no forced halt"
}
