package recordings

import (
	"slices"
	"testing"

	"github.com/reusee/turing/rules"
	"github.com/reusee/turing/tapes"
)

func testRecording() *Recording {
	return &Recording{
		Input:     tapes.New([]uint64{0, 0, 1, 5, 9}),
		InitState: 0,
		InitHead:  0,
		Steps: []rules.Action{
			{State: 1, Write: 1, Right: true},
			{State: 1, Write: 4, Right: false},
			{State: 2, Write: 1, Right: false},
			{State: 3, Write: 3, Right: true},
		},
	}
}

func TestReplay(t *testing.T) {
	rec := testRecording()
	tape, state, head := rec.Replay()

	if !slices.Equal(tape.Symbols(), []uint64{3, 1, 4, 1, 5, 9}) {
		t.Fatalf("tape: %v", tape.Symbols())
	}
	if state != 3 {
		t.Fatalf("state = %d", state)
	}
	if head != 0 {
		t.Fatalf("head = %d", head)
	}

	// replay must not touch the snapshot
	if !rec.Input.Equal(tapes.New([]uint64{0, 0, 1, 5, 9})) {
		t.Fatal("input snapshot mutated")
	}
}

func TestReplayEmpty(t *testing.T) {
	rec := &Recording{
		Input:     tapes.New([]uint64{7}),
		InitState: 4,
		InitHead:  -2,
	}
	tape, state, head := rec.Replay()
	if !tape.Equal(rec.Input) || state != 4 || head != -2 {
		t.Fatal("zero-step replay must reproduce the initial configuration")
	}
}

func TestFrames(t *testing.T) {
	rec := testRecording()

	var frames []Frame
	for frame := range rec.Frames() {
		frames = append(frames, frame)
	}
	if len(frames) != 1+2*len(rec.Steps) {
		t.Fatalf("got %d frames", len(frames))
	}

	first := frames[0]
	if first.State != rec.InitState || first.Head != rec.InitHead || first.Move != 0 {
		t.Fatalf("initial frame: %+v", first)
	}

	// frames after a write carry the impending move, settled frames do
	// not
	for i, frame := range frames[1:] {
		if i%2 == 0 && frame.Move == 0 {
			t.Fatalf("frame %d should carry a move", i+1)
		}
		if i%2 == 1 && frame.Move != 0 {
			t.Fatalf("frame %d should be settled", i+1)
		}
	}

	last := frames[len(frames)-1]
	finalTape, finalState, finalHead := rec.Replay()
	if last.State != finalState || last.Head != finalHead {
		t.Fatalf("last frame at state %d head %d, replay ends at state %d head %d",
			last.State, last.Head, finalState, finalHead)
	}
	if !last.Tape.Equal(finalTape) {
		t.Fatal("last frame tape differs from replay result")
	}
}

func TestFramesEarlyStop(t *testing.T) {
	rec := testRecording()
	n := 0
	for range rec.Frames() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("n = %d", n)
	}
}
