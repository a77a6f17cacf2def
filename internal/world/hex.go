// Package world provides the hex grid, tile classification, and spatial queries.
// Tiles are addressed by offset coordinates (x, y) where vertical neighbours are two
// rows apart and the diagonal offsets depend on row parity.
package world

// Coord is a tile position in offset coordinates.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Kind is the underlying terrain of a tile.
type Kind uint8

const (
	KindSea          Kind = iota // Deep water, the initial state of every tile
	KindPlains                   // Lowland, cheapest to cross
	KindShallow                  // Coastal water next to plains
	KindHill                     // Inland high ground
	KindMountain                 // Stamped onto hills
	KindMountainPeak             // Hill ringed by mountains
	KindRiverSource              // Hill where a river starts
	KindDebug                    // Marker tile, effectively impassable
)

var kindNames = [...]string{
	KindSea:          "sea",
	KindPlains:       "plains",
	KindShallow:      "shallow",
	KindHill:         "hill",
	KindMountain:     "mountain",
	KindMountainPeak: "mountain_peak",
	KindRiverSource:  "river_source",
	KindDebug:        "debug",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindSea, KindPlains, KindShallow, KindHill, KindMountain, KindMountainPeak, KindRiverSource, KindDebug}
}

// Feature is the overlay on top of a tile's kind.
type Feature uint8

const (
	FeatureEmpty Feature = iota
	FeatureForest
	FeatureSwamp
	FeatureMountain
	FeatureMountainPeak
	FeatureRiver
)

var featureNames = [...]string{
	FeatureEmpty:        "empty",
	FeatureForest:       "forest",
	FeatureSwamp:        "swamp",
	FeatureMountain:     "mountain",
	FeatureMountainPeak: "mountain_peak",
	FeatureRiver:        "river",
}

func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "unknown"
}

// Features lists every feature in declaration order.
func Features() []Feature {
	return []Feature{FeatureEmpty, FeatureForest, FeatureSwamp, FeatureMountain, FeatureMountainPeak, FeatureRiver}
}

// UnsetWeight is the weight of a tile before ComputeWeights has run.
const UnsetWeight = 9999

// Tile is a single hex on the grid.
type Tile struct {
	pos       Coord
	neighbors []Coord

	Kind    Kind    `json:"kind"`
	Feature Feature `json:"feature"`
	Weight  float64 `json:"weight"`
}

// Pos returns the tile's position.
func (t *Tile) Pos() Coord { return t.pos }

// X returns the tile's column.
func (t *Tile) X() int { return t.pos.X }

// Y returns the tile's row.
func (t *Tile) Y() int { return t.pos.Y }

// Neighbors returns the in-bounds adjacent positions. The slice is shared; do not modify it.
func (t *Tile) Neighbors() []Coord { return t.neighbors }

// SetKind assigns the tile's kind. Mountains and peaks carry a matching feature so that
// feature checks (river crossing, vegetation) see them as occupied.
func (t *Tile) SetKind(k Kind) {
	t.Kind = k
	switch k {
	case KindMountain:
		t.Feature = FeatureMountain
	case KindMountainPeak:
		t.Feature = FeatureMountainPeak
	}
}

// HexNeighborOffsets returns the six candidate (dy, dx) offsets for a tile in row y.
func HexNeighborOffsets(y int) [6]Coord {
	if y%2 == 0 {
		return [6]Coord{
			{X: 0, Y: -2},  // North
			{X: 0, Y: 2},   // South
			{X: -1, Y: -1}, // North west
			{X: 0, Y: -1},  // North east
			{X: -1, Y: 1},  // South west
			{X: 0, Y: 1},   // South east
		}
	}
	return [6]Coord{
		{X: 0, Y: -2},
		{X: 0, Y: 2},
		{X: 1, Y: -1},
		{X: 0, Y: -1},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}
