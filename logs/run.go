package logs

import (
	"context"
	"crypto/rand"
)

// RunID correlates every log record emitted during one simulation run.
type RunID string

type runKeyType struct{}

var RunKey runKeyType

type NewRun func(ctx context.Context) (context.Context, RunID)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context) (context.Context, RunID) {
		id := RunID(rand.Text())
		ctx = context.WithValue(ctx, RunKey, id)
		logger.InfoContext(ctx, "new run")
		return ctx, id
	}
}
