package deck

import (
	"math/rand"

	"bluemanor/pkg/game/tiles"
)

// SampleWithoutReplacement draws up to k distinct tiles from pool, where at
// each step the probability of drawing a tile is proportional to its
// rarity weight (3^-rarity). If the remaining total weight is zero the
// draw falls back to a uniform choice. If k exceeds the pool size the whole
// pool is returned. The input pool is never mutated.
func SampleWithoutReplacement(rng *rand.Rand, pool []*tiles.Tile, k int) []*tiles.Tile {
	available := make([]*tiles.Tile, len(pool))
	copy(available, pool)

	if k > len(available) {
		k = len(available)
	}

	selected := make([]*tiles.Tile, 0, k)
	for len(selected) < k {
		idx := weightedIndex(rng, available)
		selected = append(selected, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}
	return selected
}

// weightedIndex picks an index into available proportionally to tile
// weight, or uniformly when the total weight underflows to zero.
func weightedIndex(rng *rand.Rand, available []*tiles.Tile) int {
	total := 0.0
	for _, t := range available {
		total += t.Weight()
	}
	if total <= 0 {
		return rng.Intn(len(available))
	}

	r := rng.Float64() * total
	cum := 0.0
	for i, t := range available {
		cum += t.Weight()
		if r <= cum {
			return i
		}
	}
	// Float round-off can leave r a hair above the final cumulative sum.
	return len(available) - 1
}
