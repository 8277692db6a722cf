package recordings

import (
	"iter"

	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

// Recording is a replayable log of one machine run: the tape as it was
// before the first step, the starting state and head position, and
// every applied action in order. A machine produces it whole at the end
// of a recording run; it is read-only afterwards.
type Recording struct {
	Input     *tapes.Tape
	InitState uint64
	InitHead  int64
	Steps     []rules.Action
}

// Frame is one configuration a replay passes through. Tape is the live
// replay tape shared across frames; consumers must not retain it.
type Frame struct {
	Tape  *tapes.Tape
	State uint64
	Head  int64

	// Move is the head movement about to happen: -1 or +1 on the frame
	// rendered right after a write, 0 on settled frames.
	Move int64
}

// Replay applies every step to a copy of the input, returning the final
// tape, state and head. The result matches what the recorded run left
// behind.
func (r *Recording) Replay() (*tapes.Tape, uint64, int64) {
	tape := r.Input.Clone()
	state := r.InitState
	head := r.InitHead
	for _, action := range r.Steps {
		state = action.State
		tape.Write(head, action.Write)
		if action.Right {
			head++
		} else {
			head--
		}
	}
	return tape, state, head
}

// Frames yields the initial configuration, then two frames per step:
// one after the write with Move holding the impending head movement,
// and one after the head moved.
func (r *Recording) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		tape := r.Input.Clone()
		state := r.InitState
		head := r.InitHead

		if !yield(Frame{Tape: tape, State: state, Head: head}) {
			return
		}

		for _, action := range r.Steps {
			state = action.State
			tape.Write(head, action.Write)
			move := int64(-1)
			if action.Right {
				move = 1
			}
			if !yield(Frame{Tape: tape, State: state, Head: head, Move: move}) {
				return
			}
			head += move
			if !yield(Frame{Tape: tape, State: state, Head: head}) {
				return
			}
		}
	}
}
