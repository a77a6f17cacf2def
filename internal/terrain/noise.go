package terrain

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hex-kingdom/internal/world"
)

// JitterMode selects how the random weight modifier is drawn.
type JitterMode uint8

const (
	JitterUniform JitterMode = iota // independent uniform draw per tile
	JitterSimplex                   // spatially coherent simplex noise
	JitterNone                      // no modifier
)

func (m JitterMode) String() string {
	switch m {
	case JitterUniform:
		return "uniform"
	case JitterSimplex:
		return "simplex"
	case JitterNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseJitterMode parses a jitter mode name.
func ParseJitterMode(s string) (JitterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform":
		return JitterUniform, nil
	case "simplex":
		return JitterSimplex, nil
	case "none":
		return JitterNone, nil
	}
	return 0, fmt.Errorf("unknown weight noise %q", s)
}

// weights assigns every tile its traversal weight.
func (r *run) weights() error {
	r.grid.ComputeWeights(r.jitterFunc())
	return nil
}

func (r *run) jitterFunc() world.Jitter {
	switch r.jitter {
	case JitterNone:
		return nil
	case JitterSimplex:
		seed := r.seed
		if seed == 0 {
			seed = r.rng.Int63()
		}
		return SimplexJitter(seed)
	default:
		return UniformJitter(r.rng)
	}
}

// UniformJitter draws each modifier uniformly from [-1, 1).
func UniformJitter(rng *rand.Rand) world.Jitter {
	return func(world.Coord) float64 {
		return rng.Float64()*2 - 1
	}
}

// SimplexJitter samples layered simplex noise at each tile's position, so neighbouring
// tiles get similar modifiers and rivers follow broad low channels instead of noise.
func SimplexJitter(seed int64) world.Jitter {
	noise := opensimplex.NewNormalized(seed + 300)
	return func(c world.Coord) float64 {
		// Offset rows are half a hex apart vertically and odd rows shift half a column.
		x := float64(c.X) + 0.5*float64(c.Y%2)
		y := float64(c.Y) * math.Sqrt(3.0) / 4.0
		v := octaveNoise(noise, x, y, 3, 0.15, 0.5)*2 - 1
		return math.Max(-1, math.Min(1, v))
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
