package board

import "math/rand"

// LockLevelForRow draws the lock level for a door created on a connection
// into targetRow. Depth correlates with locking: the row holding the start
// cell is always open and the farthest row is always strongly locked. For
// intermediate rows the level comes from a categorical distribution over a
// linear depth fraction t, with
//
//	p(strong) = 0.1 + 0.7t
//	p(open)   = 0.7 - 0.6t
//	p(weak)   = 1 - p(open) - p(strong)
//
// so deeper rooms are locked more often.
func (b *Board) LockLevelForRow(rng *rand.Rand, targetRow int) Lock {
	if b.Rows <= 1 {
		return LockOpen
	}
	if targetRow == b.StartRow {
		return LockOpen
	}
	if targetRow == 0 {
		return LockStrong
	}

	t := float64(b.Rows-1-targetRow) / float64(b.Rows-1)
	pStrong := 0.1 + 0.7*t
	pOpen := 0.7 - 0.6*t
	pWeak := 1.0 - pOpen - pStrong
	if pWeak < 0 {
		pWeak = 0
	}

	r := rng.Float64()
	switch {
	case r < pOpen:
		return LockOpen
	case r < pOpen+pWeak:
		return LockWeak
	default:
		return LockStrong
	}
}
