package rules

import (
	"iter"
	"math/big"
)

// All yields every deterministic table over the given alphabet sizes.
// Each of the states×symbols keys independently carries either no rule
// or one of the states×symbols×2 possible actions, so partial tables
// are included: a missing rule is exactly the halting case enumeration
// experiments care about.
//
// The space is exponential in states×symbols. Keep the alphabets small.
func All(states, symbols uint64) iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		keys := make([]Key, 0, states*symbols)
		for state := uint64(0); state < states; state++ {
			for symbol := uint64(0); symbol < symbols; symbol++ {
				keys = append(keys, Key{State: state, Symbol: symbol})
			}
		}

		// one digit per key: 0 means no rule, d means action d-1
		perKey := states * symbols * 2
		digits := make([]uint64, len(keys))

		for {
			rs := make([]Rule, 0, len(keys))
			for i, d := range digits {
				if d == 0 {
					continue
				}
				rs = append(rs, Rule{
					When: keys[i],
					Then: actionAt(d-1, symbols),
				})
			}
			table, err := NewTable(rs)
			if err != nil {
				// keys are unique by construction
				panic(err)
			}
			if !yield(table) {
				return
			}

			i := 0
			for ; i < len(digits); i++ {
				digits[i]++
				if digits[i] <= perKey {
					break
				}
				digits[i] = 0
			}
			if i == len(digits) {
				return
			}
		}
	}
}

// actionAt decodes an action index; direction varies fastest, then the
// written symbol, then the next state.
func actionAt(n, symbols uint64) Action {
	right := n%2 == 1
	n /= 2
	return Action{
		State: n / symbols,
		Write: n % symbols,
		Right: right,
	}
}

// Count returns the number of tables All yields for the same alphabet:
// (states·symbols·2 + 1)^(states·symbols).
func Count(states, symbols uint64) *big.Int {
	base := new(big.Int).SetUint64(states*symbols*2 + 1)
	exp := new(big.Int).SetUint64(states * symbols)
	return new(big.Int).Exp(base, exp, nil)
}
