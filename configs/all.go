package configs

import (
	"fmt"
	"iter"
)

// All yields every value at path across the loader's files, decoded as
// T. Load or decode failures panic with the offending path, since a
// caller ranging over definitions has no way to recover mid-iteration.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("load %s: %w", path, err))
			}
			var decoded T
			if err := value.Decode(&decoded); err != nil {
				panic(fmt.Errorf("decode %s: %w", path, err))
			}
			if !yield(decoded) {
				break
			}
		}
	}
}
