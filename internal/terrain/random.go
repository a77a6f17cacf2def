package terrain

import (
	"math"
	"math/rand"

	"github.com/talgya/hex-kingdom/internal/world"
)

// minCandidates is the smallest candidate set the relief stages will pick from.
const minCandidates = 3

// intInRange returns a uniform integer in [lo, hi].
func intInRange(rng *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// times converts a scaled amount to a loop count, rounding fractions up.
func times(amount float64) int {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return int(math.Ceil(amount))
}

func pick(rng *rand.Rand, tiles []*world.Tile) *world.Tile {
	return tiles[rng.Intn(len(tiles))]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
