package terrain

import (
	"errors"

	"github.com/talgya/hex-kingdom/internal/route"
	"github.com/talgya/hex-kingdom/internal/world"
)

// rivers picks river sources on hills beside mountains, routes each one to the sea, and
// paints the routes. Every route is found before any is painted; painting stops where a
// river meets shallow water or an earlier river.
func (r *run) rivers() error {
	g := r.grid
	sources := r.riverSources()
	sea := world.MatchKind(world.KindSea)

	for _, src := range sources {
		rt, err := route.FindRoute(g, src, sea)
		if errors.Is(err, route.ErrNoRoute) {
			r.result.Failed++
			r.log.Debug("river source has no route", "x", src.X, "y", src.Y)
			continue
		}
		if err != nil {
			return err
		}
		r.result.Rivers = append(r.result.Rivers, River{Source: src, Route: rt})
	}

	for i := range r.result.Rivers {
		river := &r.result.Rivers[i]
		river.Painted = paintRiver(g, river.Route)
	}

	r.log.Debug("rivers carved", "sources", len(sources), "rivers", len(r.result.Rivers), "failed", r.result.Failed)
	return nil
}

// riverSources promotes up to 3 x river modifier hills to river sources, keeping them
// apart by a 4x8 window.
func (r *run) riverSources() []world.Coord {
	g := r.grid
	mountain := world.MatchKind(world.KindMountain)
	source := world.MatchKind(world.KindRiverSource)

	var candidates []*world.Tile
	for _, t := range g.Land() {
		if t.Kind == world.KindHill && t.Feature == world.FeatureEmpty &&
			g.CountNeighbors(mountain, t.Neighbors()) > 0 {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var sources []world.Coord
	for i := 0; i < times(3*r.params.RiverModifier); i++ {
		t := pick(r.rng, candidates)
		if g.RectContains(source, t.X(), t.Y(), 4, 8) {
			continue
		}
		t.SetKind(world.KindRiverSource)
		sources = append(sources, t.Pos())
	}
	return sources
}

// paintRiver marks the route as river up to the first shallow or river tile and
// returns how many tiles it marked.
func paintRiver(g *world.Grid, rt route.Route) int {
	for i, c := range rt {
		t := g.Tile(c)
		if t.Kind == world.KindShallow || t.Feature == world.FeatureRiver {
			return i
		}
		t.Feature = world.FeatureRiver
	}
	return len(rt)
}
