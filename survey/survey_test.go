package survey

import (
	"context"
	"testing"

	"github.com/reusee/dscope"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
)

func TestRunSmallest(t *testing.T) {
	dscope.New(
		new(logs.Module),
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run Run,
	) {
		// 1x1 alphabet: the empty table halts immediately in state 0,
		// which is also the maximal state; the two single-rule tables
		// loop forever.
		res, err := run(context.Background(), 1, 1, 10)
		if err != nil {
			t.Fatal(err)
		}
		if res.Tables != 3 {
			t.Fatalf("tables = %d", res.Tables)
		}
		if res.Halted != 1 || res.HaltedInMax != 1 {
			t.Fatalf("halted = %d, in max = %d", res.Halted, res.HaltedInMax)
		}
		if res.Forced != 2 {
			t.Fatalf("forced = %d", res.Forced)
		}
	})
}

func TestRunPartition(t *testing.T) {
	dscope.New(
		new(logs.Module),
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run Run,
	) {
		res, err := run(context.Background(), 2, 1, 20)
		if err != nil {
			t.Fatal(err)
		}
		// (2·1·2+1)^2 tables
		if res.Tables != 25 {
			t.Fatalf("tables = %d", res.Tables)
		}
		if res.Halted+res.Forced != res.Tables {
			t.Fatalf("classification does not partition: %+v", res)
		}
		if res.HaltedInMax > res.Halted {
			t.Fatalf("inconsistent counts: %+v", res)
		}
	})
}

func TestRunZeroStates(t *testing.T) {
	res, err := run(context.Background(), 0, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if res != (Result{}) {
		t.Fatalf("res = %+v", res)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := run(ctx, 2, 2, 5); err == nil {
		t.Fatal("expected context error")
	}
}
