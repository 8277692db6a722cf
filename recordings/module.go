package recordings

import (
	"io"
	"time"

	"github.com/reusee/dscope"

	"github.com/reusee/turing/logs"
)

type Module struct {
	dscope.Module
}

type NewPlayer func(out io.Writer, stepDelay time.Duration, clearScreen bool) *Player

func (Module) NewPlayer(
	logger logs.Logger,
) NewPlayer {
	return func(out io.Writer, stepDelay time.Duration, clearScreen bool) *Player {
		return &Player{
			Output:      out,
			StepDelay:   stepDelay,
			ClearScreen: clearScreen,
			Logger:      logger,
		}
	}
}
