package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/survey"
	"github.com/reusee/turing/vars"
)

var (
	states   = cmds.Var[uint64]("-states")
	symbols  = cmds.Var[uint64]("-symbols")
	maxSteps = cmds.Var[uint64]("-steps")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(logs.Module),
		new(survey.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		run survey.Run,
	) {
		res, err := run(
			context.Background(),
			vars.FirstNonZero(*states, 2),
			vars.FirstNonZero(*symbols, 2),
			vars.FirstNonZero(*maxSteps, 50),
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("tables:        %d\n", res.Tables)
		fmt.Printf("halted:        %d\n", res.Halted)
		fmt.Printf("halted in max: %d\n", res.HaltedInMax)
		fmt.Printf("forced:        %d\n", res.Forced)
	})
}
