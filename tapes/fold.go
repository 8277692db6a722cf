package tapes

// positionToIndex folds a signed tape position into a slot of the
// backing slice. Non-negative positions take the even slots, negative
// positions the odd slots, so both directions grow the same slice
// outward from slot 0:
//
//	0 → 0, 1 → 2, -1 → 1, 2 → 4, -2 → 3, 3 → 6, ...
func positionToIndex(p int64) int {
	return int((4*abs(p) + sign(p) - 1) / 2)
}

// indexToPosition recovers the position from slot parity. Inverse of
// positionToIndex.
func indexToPosition(idx int) int64 {
	i := int64(idx)
	return (1-2*(i%2))*i/2 - i%2
}

func abs(p int64) int64 {
	if p < 0 {
		return -p
	}
	return p
}

func sign(p int64) int64 {
	switch {
	case p > 0:
		return 1
	case p < 0:
		return -1
	}
	return 0
}
