package terrain

import "github.com/talgya/hex-kingdom/internal/world"

// hills raises every land tile well away from the sea, then carves plains valleys back
// into a random selection of them.
func (r *run) hills() error {
	g := r.grid
	sea := world.MatchKind(world.KindSea)

	var candidates []*world.Tile
	for _, t := range g.Land() {
		if !g.RectContains(sea, t.X(), t.Y(), 1, 6) {
			t.SetKind(world.KindHill)
			candidates = append(candidates, t)
		}
	}
	if len(candidates) < minCandidates {
		r.log.Debug("too few hill candidates", "candidates", len(candidates))
		return nil
	}

	valleys := times(10 * r.params.HillModifier)
	for i := 0; i < valleys; i++ {
		t := pick(r.rng, candidates)
		x := g.ClampToBorder(world.AxisX, t.X())
		y := g.ClampToBorder(world.AxisY, t.Y())
		g.Stamp(world.KindPlains, world.PrefabHill, y, x)
	}
	r.log.Debug("hills raised", "hills", len(candidates), "valleys", valleys)
	return nil
}

// mountains stamps mountain clusters onto hills that have no plains close by.
func (r *run) mountains() error {
	g := r.grid
	plains := world.MatchKind(world.KindPlains)

	var candidates []*world.Tile
	for _, t := range g.Land() {
		if t.Kind == world.KindHill && !g.RectContains(plains, t.X(), t.Y(), 2, 2) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) < minCandidates {
		r.log.Debug("too few mountain candidates", "candidates", len(candidates))
		return nil
	}

	count := times(r.params.MountainModifier)
	for i := 0; i < count; i++ {
		t := pick(r.rng, candidates)
		x := g.ClampToBorder(world.AxisX, t.X())
		y := g.ClampToBorder(world.AxisY, t.Y())
		g.Stamp(world.KindMountain, world.PrefabMountain, y, x)
	}
	r.log.Debug("mountains placed", "candidates", len(candidates), "ranges", count)
	return nil
}

// peaks turns hills ringed by at least four mountains into mountain peaks.
func (r *run) peaks() error {
	n := r.grid.PromoteIfSurrounded(world.SubsetLand, world.KindMountainPeak,
		world.MatchKind(world.KindMountain), 4, world.KindHill)
	r.log.Debug("peaks promoted", "peaks", n)
	return nil
}

// coastlines turns sea next to plains into shallow water.
func (r *run) coastlines() error {
	n := r.grid.PromoteIfSurrounded(world.SubsetSea, world.KindShallow,
		world.MatchKind(world.KindPlains), 1)
	r.log.Debug("coastline drawn", "shallow", n)
	return nil
}
