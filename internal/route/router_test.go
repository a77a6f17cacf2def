package route

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hex-kingdom/internal/world"
)

// corridor builds a 3-wide grid where every tile is forested plains except the middle
// column's even rows, which form a straight line joined by the y±2 neighbours.
// kinds and weights describe the line from the top; the last entry is usually the goal.
func corridor(t *testing.T, kinds []world.Kind, weights []float64) *world.Grid {
	t.Helper()
	g, err := world.New(3, 2*len(kinds)-1, 0)
	require.NoError(t, err)

	for _, tile := range g.Tiles() {
		tile.Kind = world.KindPlains
		tile.Feature = world.FeatureForest
		tile.Weight = 1
	}
	for i, k := range kinds {
		tile := g.At(1, 2*i)
		tile.Feature = world.FeatureEmpty
		tile.Kind = k
		tile.Weight = weights[i]
	}
	return g
}

var sea = world.MatchKind(world.KindSea)

func TestFindRouteStraightLine(t *testing.T) {
	g := corridor(t,
		[]world.Kind{world.KindRiverSource, world.KindPlains, world.KindPlains, world.KindSea},
		[]float64{5, 3, 1, 5000},
	)

	r, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
	require.NoError(t, err)
	assert.Equal(t, Route{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 1, Y: 4}}, r)

	seen := make(map[world.Coord]bool)
	cost, last := 0.0, -1.0
	for i, c := range r {
		assert.False(t, seen[c], "tile %v visited twice", c)
		seen[c] = true
		if i > 0 {
			cost += g.Tile(c).Weight
		}
		assert.GreaterOrEqual(t, cost, last)
		last = cost
	}
}

func TestFindRouteGoalNextToOrigin(t *testing.T) {
	g := corridor(t,
		[]world.Kind{world.KindRiverSource, world.KindSea},
		[]float64{5, 5000},
	)

	r, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
	require.NoError(t, err)
	assert.Equal(t, Route{{X: 1, Y: 0}}, r)
}

func TestFindRouteNeverClimbsBackUphill(t *testing.T) {
	t.Run("hill after plains blocks the river", func(t *testing.T) {
		g := corridor(t,
			[]world.Kind{world.KindRiverSource, world.KindPlains, world.KindHill, world.KindPlains, world.KindSea},
			[]float64{5, 1, 2, 1, 5000},
		)
		_, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
		assert.True(t, errors.Is(err, ErrNoRoute))
	})

	t.Run("hills before plains are fine", func(t *testing.T) {
		g := corridor(t,
			[]world.Kind{world.KindRiverSource, world.KindHill, world.KindHill, world.KindPlains, world.KindSea},
			[]float64{5, 2, 2, 1, 5000},
		)
		r, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
		require.NoError(t, err)
		assert.Equal(t, Route{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 1, Y: 4}, {X: 1, Y: 6}}, r)
	})
}

func TestFindRouteAvoidsFeatures(t *testing.T) {
	g := corridor(t,
		[]world.Kind{world.KindRiverSource, world.KindHill, world.KindPlains, world.KindSea},
		[]float64{5, 2, 1, 5000},
	)
	g.At(1, 2).Feature = world.FeatureRiver

	_, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
	assert.True(t, errors.Is(err, ErrNoRoute))
}

func TestFindRoutePrefersCheaperBranch(t *testing.T) {
	// Two open columns joined at the top; the right one is cheaper.
	g, err := world.New(4, 9, 0)
	require.NoError(t, err)
	for _, tile := range g.Tiles() {
		tile.Kind = world.KindHill
		tile.Feature = world.FeatureForest
		tile.Weight = 2
	}
	open := func(x, y int, w float64) {
		tile := g.At(x, y)
		tile.Feature = world.FeatureEmpty
		tile.Weight = w
	}
	open(1, 0, 5) // origin
	open(1, 2, 9)
	open(1, 4, 9)
	open(1, 1, 1) // odd row, links (1,0) and (2,2)
	open(2, 2, 1)
	open(2, 4, 1)
	open(2, 6, 1)
	g.At(2, 8).Kind = world.KindSea
	g.At(2, 8).Feature = world.FeatureEmpty

	r, err := FindRoute(g, world.Coord{X: 1, Y: 0}, sea)
	require.NoError(t, err)
	assert.Equal(t, Route{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 4}, {X: 2, Y: 6}}, r)
}

func TestFindRouteOriginOffGrid(t *testing.T) {
	g, err := world.New(3, 3, 0)
	require.NoError(t, err)

	_, err = FindRoute(g, world.Coord{X: 5, Y: 5}, sea)
	assert.True(t, errors.Is(err, ErrNoRoute))
}
