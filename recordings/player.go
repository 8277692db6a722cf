package recordings

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/reusee/turing/logs"
)

// window is the number of cells shown on each side of the head.
const window = 5

// cellWidth must fit large symbols and stay odd so the head marker
// centers.
const cellWidth = 9

// Player renders a recording as an animated strip of tape around the
// head. It runs strictly after the machine halted; playback never
// touches a live run.
type Player struct {
	Output      io.Writer
	StepDelay   time.Duration
	ClearScreen bool
	Logger      logs.Logger
}

var (
	cellStyle  = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	headStyle  = cellStyle.Bold(true).Reverse(true)
	indexStyle = cellStyle.Faint(true)
	stateStyle = lipgloss.NewStyle().Bold(true)
)

func (p *Player) Play(rec *Recording) {
	p.Logger.Info("playing recording",
		"steps", len(rec.Steps),
		"delay", p.StepDelay,
	)

	out := termenv.NewOutput(p.Output)
	for frame := range rec.Frames() {
		if p.ClearScreen {
			out.ClearScreen()
		}
		fmt.Fprintln(p.Output, renderFrame(frame))
		time.Sleep(p.StepDelay)
	}

	p.Logger.Info("playback done")
}

func renderFrame(f Frame) string {
	cells := make([]string, 0, 2*window+1)
	indexes := make([]string, 0, 2*window+1)
	for pos := f.Head - window; pos <= f.Head+window; pos++ {
		style := cellStyle
		if pos == f.Head {
			style = headStyle
		}
		cells = append(cells, style.Render(fmt.Sprintf("%d", f.Tape.At(pos))))
		indexes = append(indexes, indexStyle.Render(fmt.Sprintf("%d", pos)))
	}

	head := fmt.Sprintf("H(%d)", f.State)
	switch f.Move {
	case -1:
		head = "<-- " + head
	case 1:
		head = head + " -->"
	default:
		head = "    " + head
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", window*cellWidth))
	b.WriteString(stateStyle.Render(head))
	b.WriteString("\n")
	b.WriteString("tape:  ")
	b.WriteString(strings.Join(cells, ""))
	b.WriteString("\n")
	b.WriteString("index: ")
	b.WriteString(strings.Join(indexes, ""))
	b.WriteString("\n")
	return b.String()
}
