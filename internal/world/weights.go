package world

import "math"

// Jitter returns the random weight modifier for a tile. Values are clamped to [-1, 1].
type Jitter func(c Coord) float64

// KindWeight returns the traversal cost contributed by a kind. Lower is cheaper.
func KindWeight(k Kind) float64 {
	switch k {
	case KindPlains:
		return 1
	case KindShallow, KindHill:
		return 2
	case KindRiverSource:
		return 5
	case KindMountain:
		return 12
	case KindMountainPeak:
		return 50
	case KindDebug:
		return 9999
	case KindSea:
		return 5000
	default:
		return UnsetWeight
	}
}

// FeatureWeight returns the traversal cost contributed by a feature.
func FeatureWeight(f Feature) float64 {
	switch f {
	case FeatureForest:
		return 1
	case FeatureSwamp:
		return 3
	default:
		return 0
	}
}

// BaseWeight is a tile's weight without any modifier.
func BaseWeight(t *Tile) float64 {
	return KindWeight(t.Kind) + FeatureWeight(t.Feature)
}

// ComputeWeights sets every tile's weight from its kind and feature plus the jitter
// modifier. A nil jitter gives deterministic weights. Weights never drop below 1.
func (g *Grid) ComputeWeights(j Jitter) {
	for i := range g.tiles {
		t := &g.tiles[i]
		mod := 0.0
		if j != nil {
			mod = clampUnit(j(t.pos))
		}
		w := BaseWeight(t) + mod
		if w < 1 {
			w = 1
		}
		t.Weight = w
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
