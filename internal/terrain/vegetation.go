package terrain

import "github.com/talgya/hex-kingdom/internal/world"

// swampShare scales the vegetation number down for swamps.
const swampShare = 0.4

// forests seeds forests on dry hills and plains and grows them outward.
func (r *run) forests() error {
	g := r.grid
	shallow := world.MatchKind(world.KindShallow)

	var candidates []*world.Tile
	for _, t := range g.Land() {
		if t.Kind != world.KindPlains && t.Kind != world.KindHill {
			continue
		}
		if t.Feature == world.FeatureEmpty && g.CountNeighbors(shallow, t.Neighbors()) == 0 {
			candidates = append(candidates, t)
		}
	}

	veg := r.params.Vegetation
	seeds := r.seedVegetation(candidates, world.FeatureForest,
		veg.VegetationNumber*r.params.VegetationModifier, veg.HillChance, veg.PlainsChance)
	r.log.Debug("forests seeded", "candidates", len(candidates), "seeds", seeds)
	return nil
}

// swamps seeds swamps on plains along the shore. Swamps never spread onto hills.
func (r *run) swamps() error {
	g := r.grid
	shallow := world.MatchKind(world.KindShallow)

	var candidates []*world.Tile
	for _, t := range g.Land() {
		if t.Kind != world.KindPlains || t.Feature != world.FeatureEmpty {
			continue
		}
		if g.CountNeighbors(shallow, t.Neighbors()) > 0 {
			candidates = append(candidates, t)
		}
	}

	veg := r.params.Vegetation
	seeds := r.seedVegetation(candidates, world.FeatureSwamp,
		veg.VegetationNumber*swampShare*r.params.VegetationModifier, 0, veg.PlainsChance)
	r.log.Debug("swamps seeded", "candidates", len(candidates), "seeds", seeds)
	return nil
}

// seedVegetation marks amount random candidates with f and expands from each.
// Returns the number of seeds planted.
func (r *run) seedVegetation(candidates []*world.Tile, f world.Feature, amount, hillChance, plainsChance float64) int {
	if len(candidates) == 0 {
		return 0
	}
	planted := 0
	for i := 0; i < times(amount); i++ {
		seed := pick(r.rng, candidates)
		if seed.Feature != world.FeatureEmpty && seed.Feature != f {
			continue
		}
		seed.Feature = f
		planted++
		r.expand(r.grid.FeatureFreeNeighbors(seed, f), f, hillChance, plainsChance)
	}
	return planted
}

// expand grows f outward from frontier for a fixed number of rounds. Each round every
// frontier tile draws once: a hill below hillChance or plains below plainsChance takes
// the feature and queues its neighbours, anything else waits for the next round.
// Tiles already carrying a feature drop out.
func (r *run) expand(frontier []*world.Tile, f world.Feature, hillChance, plainsChance float64) {
	g := r.grid
	rounds := times(r.params.Vegetation.ExpansionNumber * r.params.VegetationModifier)

	for round := 0; round < rounds && len(frontier) > 0; round++ {
		var next []*world.Tile
		queued := make(map[world.Coord]bool, len(frontier))
		push := func(t *world.Tile) {
			if !queued[t.Pos()] {
				queued[t.Pos()] = true
				next = append(next, t)
			}
		}

		for _, t := range frontier {
			if t.Feature != world.FeatureEmpty {
				continue
			}
			draw := r.rng.Float64()
			if (t.Kind == world.KindHill && draw < hillChance) ||
				(t.Kind == world.KindPlains && draw < plainsChance) {
				t.Feature = f
				for _, n := range g.FeatureFreeNeighbors(t, f) {
					push(n)
				}
				continue
			}
			push(t)
		}
		frontier = next
	}
}
