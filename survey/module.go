package survey

import (
	"context"

	"github.com/reusee/dscope"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/rules"
)

type Module struct {
	dscope.Module
}

// Run enumerates every table over the alphabet, runs each on its own
// blank tape under the step bound, and classifies the outcomes.
type Run func(ctx context.Context, states, symbols, maxSteps uint64) (Result, error)

func (Module) Run(
	logger logs.Logger,
	newRun logs.NewRun,
) Run {
	return func(ctx context.Context, states, symbols, maxSteps uint64) (Result, error) {
		ctx, _ = newRun(ctx)
		logger.InfoContext(ctx, "survey start",
			"states", states,
			"symbols", symbols,
			"max-steps", maxSteps,
			"tables", rules.Count(states, symbols).String(),
		)

		res, err := run(ctx, states, symbols, maxSteps)
		if err != nil {
			return res, err
		}

		logger.InfoContext(ctx, "survey done",
			"tables", res.Tables,
			"halted", res.Halted,
			"halted-in-max", res.HaltedInMax,
			"forced", res.Forced,
		)
		return res, nil
	}
}
