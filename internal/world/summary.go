package world

// KindCounts returns a summary of kind distribution.
func (g *Grid) KindCounts() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range g.tiles {
		counts[g.tiles[i].Kind]++
	}
	return counts
}

// FeatureCounts returns a summary of feature distribution, empty tiles included.
func (g *Grid) FeatureCounts() map[Feature]int {
	counts := make(map[Feature]int)
	for i := range g.tiles {
		counts[g.tiles[i].Feature]++
	}
	return counts
}

// KindName returns a human-readable name for a kind.
func KindName(k Kind) string {
	switch k {
	case KindSea:
		return "Sea"
	case KindPlains:
		return "Plains"
	case KindShallow:
		return "Shallow Water"
	case KindHill:
		return "Hill"
	case KindMountain:
		return "Mountain"
	case KindMountainPeak:
		return "Mountain Peak"
	case KindRiverSource:
		return "River Source"
	case KindDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// FeatureName returns a human-readable name for a feature.
func FeatureName(f Feature) string {
	switch f {
	case FeatureEmpty:
		return "None"
	case FeatureForest:
		return "Forest"
	case FeatureSwamp:
		return "Swamp"
	case FeatureMountain:
		return "Mountain"
	case FeatureMountainPeak:
		return "Mountain Peak"
	case FeatureRiver:
		return "River"
	default:
		return "Unknown"
	}
}
