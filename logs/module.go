package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer is the sink log handlers write to.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
