package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reusee/dscope"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/recordings"
	"github.com/reusee/turing/scripts"
	"github.com/reusee/turing/vars"
)

var (
	defPath  = cmds.Var[string]("-def")
	defName  = cmds.Var[string]("-name")
	maxSteps = cmds.Var[uint64]("-steps")
	maxMilli = cmds.Var[uint64]("-millis")
	play     = cmds.Switch("-play")
	delayMS  = cmds.Var[uint64]("-delay")
	cls      = cmds.Switch("-cls")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(logs.Module),
		new(recordings.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newRun logs.NewRun,
		newPlayer recordings.NewPlayer,
	) {
		ctx, _ := newRun(context.Background())

		def, err := loadDefinition()
		if err != nil {
			fatal(err)
		}
		table, err := def.Table()
		if err != nil {
			fatal(err)
		}

		machine := machines.New(table)
		tape := def.Tape()

		halt := def.HaltSetting()
		if *maxSteps > 0 {
			halt = machines.AfterSteps(*maxSteps)
		}
		if *maxMilli > 0 {
			halt = machines.AfterDuration(time.Duration(*maxMilli) * time.Millisecond)
		}

		logger.InfoContext(ctx, "running",
			"definition", def.Name,
			"rules", table.Len(),
			"halt", halt.String(),
		)

		if *play {
			rec := machine.RunWithHaltSettingAndRecord(tape, halt)
			delay := vars.FirstNonZero(*delayMS, 250)
			player := newPlayer(os.Stdout, time.Duration(delay)*time.Millisecond, *cls)
			player.Play(rec)
		} else {
			machine.RunWithHaltSetting(tape, halt)
		}

		logger.InfoContext(ctx, "halted",
			"state", machine.State(),
			"head", machine.Head(),
		)
		fmt.Println(tape.Symbols())
	})
}

func loadDefinition() (*configs.Definition, error) {
	if *defPath == "" {
		return busyBeaver2(), nil
	}

	if strings.HasSuffix(*defPath, ".star") {
		f, err := os.Open(*defPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return scripts.Load(filepath.Base(*defPath), f)
	}

	defs, err := configs.LoadDefinitions([]string{*defPath})
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no machine definitions in %s", *defPath)
	}
	if *defName == "" {
		return &defs[0], nil
	}
	for i := range defs {
		if defs[i].Name == *defName {
			return &defs[i], nil
		}
	}
	return nil, fmt.Errorf("no definition named %q in %s", *defName, *defPath)
}

// the two-state busy beaver, bounded well past its 6-step halt
func busyBeaver2() *configs.Definition {
	steps := uint64(100)
	return &configs.Definition{
		Name: "busy-beaver-2",
		Rules: []configs.DefRule{
			{State: 0, Read: 0, Next: 1, Write: 1, Move: "R"},
			{State: 1, Read: 0, Next: 0, Write: 1, Move: "L"},
			{State: 0, Read: 1, Next: 1, Write: 1, Move: "L"},
		},
		Halt: configs.DefHalt{Steps: &steps},
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
