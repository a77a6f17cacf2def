package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	g, err := New(5, 5, 0)
	require.NoError(t, err)
	g.At(2, 2).Kind = KindPlains
	plains := MatchKind(KindPlains)

	tests := []struct {
		name           string
		cx, cy, xr, yr int
		want           bool
	}{
		{"tall window reaches up", 2, 4, 1, 6, true},
		{"tall window covers the column to the left", 3, 4, 1, 6, true},
		{"tall window misses to the right", 4, 4, 1, 6, false},
		{"square window below right", 3, 3, 2, 2, true},
		{"square window centred", 2, 2, 2, 2, true},
		{"square window above left", 1, 1, 2, 2, false},
		{"window hanging off the corner", 0, 0, 6, 6, true},
		{"window entirely off grid", -10, -10, 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.RectContains(plains, tt.cx, tt.cy, tt.xr, tt.yr))
		})
	}
}

func TestRectContainsMatchesFeature(t *testing.T) {
	g, err := New(5, 5, 0)
	require.NoError(t, err)
	g.At(2, 2).Kind = KindHill
	g.At(2, 2).Feature = FeatureRiver

	assert.True(t, g.RectContains(MatchFeature(FeatureRiver), 2, 2, 2, 2))
	assert.False(t, g.RectContains(MatchKind(KindRiverSource), 2, 2, 4, 8))
}

func TestCountNeighbors(t *testing.T) {
	g, err := New(5, 6, 0)
	require.NoError(t, err)
	tile := g.At(1, 2)
	for _, c := range tile.Neighbors()[:3] {
		g.Tile(c).Kind = KindPlains
	}
	g.Tile(tile.Neighbors()[3]).SetKind(KindMountain)
	g.Tile(tile.Neighbors()[4]).Kind = KindHill
	g.Tile(tile.Neighbors()[4]).Feature = FeatureMountain

	assert.Equal(t, 3, g.CountNeighbors(MatchKind(KindPlains), tile.Neighbors()))
	assert.Equal(t, 2, g.CountNeighbors(MatchKind(KindMountain), tile.Neighbors()))
	assert.Equal(t, 1, g.CountNeighbors(MatchKind(KindSea), tile.Neighbors()))
	assert.Equal(t, 0, g.CountNeighbors(MatchKind(KindPlains), nil))
}

func TestMatchAny(t *testing.T) {
	tile := &Tile{Kind: KindShallow, Feature: FeatureEmpty}
	m := MatchAny(MatchKind(KindSea), MatchFeature(FeatureRiver))
	assert.False(t, m.Tile(tile))

	tile.Feature = FeatureRiver
	assert.True(t, m.Tile(tile))

	assert.True(t, Match{}.Empty())
	assert.False(t, m.Empty())
}

func TestClampToBorder(t *testing.T) {
	g, err := New(9, 21, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		axis Axis
		in   int
		want int
	}{
		{"x below", AxisX, -5, 3},
		{"x above", AxisX, 7, 6},
		{"x inside", AxisX, 4, 4},
		{"y below", AxisY, 0, 3},
		{"y above", AxisY, 20, 18},
		{"y inside", AxisY, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ClampToBorder(tt.axis, tt.in))
		})
	}
}

func TestFeatureFreeNeighbors(t *testing.T) {
	g, err := New(5, 6, 0)
	require.NoError(t, err)
	tile := g.At(1, 2)
	g.At(1, 0).Feature = FeatureForest
	g.At(0, 1).Feature = FeatureSwamp

	free := g.FeatureFreeNeighbors(tile, FeatureForest)
	assert.Len(t, free, 5)
	for _, n := range free {
		assert.NotEqual(t, FeatureForest, n.Feature)
	}
}

func TestPromoteIfSurroundedCoastline(t *testing.T) {
	g, err := New(9, 21, 3)
	require.NoError(t, err)
	g.Stamp(KindPlains, PrefabBone, 10, 4)
	g.ClassifyLandAndSea()

	plains := MatchKind(KindPlains)
	want := make(map[Coord]bool)
	for _, tile := range g.Sea() {
		if g.CountNeighbors(plains, tile.Neighbors()) >= 1 {
			want[tile.Pos()] = true
		}
	}
	require.NotEmpty(t, want)

	n := g.PromoteIfSurrounded(SubsetSea, KindShallow, plains, 1)
	assert.Equal(t, len(want), n)
	for _, tile := range g.Sea() {
		if want[tile.Pos()] {
			assert.Equal(t, KindShallow, tile.Kind, "tile %v", tile.Pos())
		} else {
			assert.Equal(t, KindSea, tile.Kind, "tile %v", tile.Pos())
		}
	}
	for _, tile := range g.Land() {
		assert.Equal(t, KindPlains, tile.Kind)
	}
}

func TestPromoteIfSurroundedOnlyKinds(t *testing.T) {
	g, err := New(5, 9, 0)
	require.NoError(t, err)

	centre := g.At(2, 4)
	centre.SetKind(KindHill)
	g.markLand(centre)
	for _, c := range centre.Neighbors()[:4] {
		n := g.Tile(c)
		n.SetKind(KindMountain)
		g.markLand(n)
	}
	g.ClassifyLandAndSea()

	n := g.PromoteIfSurrounded(SubsetLand, KindMountainPeak, MatchKind(KindMountain), 4, KindPlains)
	assert.Equal(t, 0, n)
	assert.Equal(t, KindHill, centre.Kind)

	n = g.PromoteIfSurrounded(SubsetLand, KindMountainPeak, MatchKind(KindMountain), 4, KindHill)
	assert.Equal(t, 1, n)
	assert.Equal(t, KindMountainPeak, centre.Kind)
	assert.Equal(t, FeatureMountainPeak, centre.Feature)
}

func TestComputeWeights(t *testing.T) {
	g, err := New(4, 4, 0)
	require.NoError(t, err)
	kinds := Kinds()
	features := []Feature{FeatureEmpty, FeatureForest, FeatureSwamp, FeatureRiver}
	for i, tile := range g.Tiles() {
		tile.Kind = kinds[i%len(kinds)]
		tile.Feature = features[i%len(features)]
	}

	t.Run("deterministic without jitter", func(t *testing.T) {
		g.ComputeWeights(nil)
		first := make([]float64, 0, g.Len())
		for _, tile := range g.Tiles() {
			assert.Equal(t, BaseWeight(tile), tile.Weight)
			first = append(first, tile.Weight)
		}
		g.ComputeWeights(nil)
		for i, tile := range g.Tiles() {
			assert.Equal(t, first[i], tile.Weight)
		}
	})

	t.Run("random jitter stays within one of base", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for round := 0; round < 20; round++ {
			g.ComputeWeights(func(Coord) float64 { return rng.Float64()*2 - 1 })
			for _, tile := range g.Tiles() {
				base := BaseWeight(tile)
				assert.GreaterOrEqual(t, tile.Weight, base-1)
				assert.LessOrEqual(t, tile.Weight, base+1)
				assert.GreaterOrEqual(t, tile.Weight, 1.0)
			}
		}
	})

	t.Run("jitter is clamped", func(t *testing.T) {
		g.ComputeWeights(func(Coord) float64 { return 5 })
		for _, tile := range g.Tiles() {
			assert.Equal(t, BaseWeight(tile)+1, tile.Weight)
		}
	})
}

func TestComputeWeightsFloorsAtOne(t *testing.T) {
	g, err := New(1, 1, 0)
	require.NoError(t, err)
	g.At(0, 0).Kind = KindPlains

	g.ComputeWeights(func(Coord) float64 { return -1 })
	assert.Equal(t, 1.0, g.At(0, 0).Weight)
}

func TestKindWeights(t *testing.T) {
	want := map[Kind]float64{
		KindPlains:       1,
		KindShallow:      2,
		KindHill:         2,
		KindRiverSource:  5,
		KindMountain:     12,
		KindMountainPeak: 50,
		KindDebug:        9999,
		KindSea:          5000,
	}
	for k, w := range want {
		assert.Equal(t, w, KindWeight(k), k.String())
	}
	assert.Equal(t, 1.0, FeatureWeight(FeatureForest))
	assert.Equal(t, 3.0, FeatureWeight(FeatureSwamp))
	assert.Equal(t, 0.0, FeatureWeight(FeatureRiver))
	assert.Equal(t, 0.0, FeatureWeight(FeatureMountain))
}
