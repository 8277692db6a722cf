package scripts

import (
	"fmt"
	"io"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/reusee/turing/configs"
)

// Load executes a Starlark machine definition and returns what it
// declared. Scripts call rule() once per table entry, and optionally
// input() and one of the halt builtins; rule families can be generated
// with ordinary loops and helpers. Validation of moves and duplicate
// keys happens later, in Definition.Table.
func Load(name string, src io.Reader) (*configs.Definition, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	def := &configs.Definition{
		Name: name,
	}

	predeclared := starlark.StringDict{

		"rule": starlarkutil.MakeFunc("rule", func(state, read, next, write uint64, move string) {
			def.Rules = append(def.Rules, configs.DefRule{
				State: state,
				Read:  read,
				Next:  next,
				Write: write,
				Move:  move,
			})
		}),

		"halt_after_steps": starlarkutil.MakeFunc("halt_after_steps", func(n uint64) {
			def.Halt = configs.DefHalt{Steps: &n}
		}),

		"halt_after_millis": starlarkutil.MakeFunc("halt_after_millis", func(n uint64) {
			def.Halt = configs.DefHalt{Millis: &n}
		}),

		"input": starlark.NewBuiltin("input", func(
			thread *starlark.Thread,
			builtin *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var list *starlark.List
			if err := starlark.UnpackPositionalArgs("input", args, kwargs, 1, &list); err != nil {
				return nil, err
			}
			symbols := make([]uint64, 0, list.Len())
			for i := range list.Len() {
				symbol, err := starlark.AsInt32(list.Index(i))
				if err != nil || symbol < 0 {
					return nil, fmt.Errorf("input[%d]: not a symbol: %v", i, list.Index(i))
				}
				symbols = append(symbols, uint64(symbol))
			}
			def.Input = symbols
			return starlark.None, nil
		}),
	}

	thread := &starlark.Thread{
		Name: name,
	}
	opts := &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}
	if _, err := starlark.ExecFileOptions(opts, thread, name, data, predeclared); err != nil {
		return nil, err
	}

	return def, nil
}
