package world

import (
	"errors"
	"fmt"
)

// ErrBadDimensions is returned by New for an unusable width, height, or border.
var ErrBadDimensions = errors.New("bad grid dimensions")

// Axis selects a grid dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Subset selects one side of the land/sea partition.
type Subset uint8

const (
	SubsetLand Subset = iota
	SubsetSea
)

// Grid holds every tile of a rectangular hex-offset map.
type Grid struct {
	width, height, border int

	tiles  []Tile // row-major, index y*width + x
	land   []bool // land membership, indexed like tiles
	marked int    // number of true entries in land

	classified   bool
	strictBorder bool
}

// Option configures a Grid.
type Option func(*Grid)

// WithStrictBorder makes Stamp reject centres outside the border margin on either side.
// Without it the guard only rejects a centre that is below the margin and above the far
// margin at once, which never happens for a normal border, so stamps are only bounded
// by the grid itself.
func WithStrictBorder() Option {
	return func(g *Grid) { g.strictBorder = true }
}

// New allocates every tile and computes its neighbours.
func New(width, height, border int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 || border < 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d border=%d", ErrBadDimensions, width, height, border)
	}

	g := &Grid{
		width:  width,
		height: height,
		border: border,
		tiles:  make([]Tile, width*height),
		land:   make([]bool, width*height),
	}
	for _, opt := range opts {
		opt(g)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := &g.tiles[y*width+x]
			t.pos = Coord{X: x, Y: y}
			t.Weight = UnsetWeight
			t.neighbors = g.computeNeighbors(t.pos)
		}
	}

	return g, nil
}

func (g *Grid) computeNeighbors(c Coord) []Coord {
	result := make([]Coord, 0, 6)
	for _, off := range HexNeighborOffsets(c.Y) {
		n := Coord{X: c.X + off.X, Y: c.Y + off.Y}
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Border returns the margin kept clear of random placement.
func (g *Grid) Border() int { return g.border }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the tile at (x, y), or nil if out of bounds.
func (g *Grid) At(x, y int) *Tile {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return &g.tiles[y*g.width+x]
}

// Tile returns the tile at c, or nil if out of bounds.
func (g *Grid) Tile(c Coord) *Tile {
	return g.At(c.X, c.Y)
}

// Tiles returns every tile in row-major order. The slice aliases grid storage.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		out[i] = &g.tiles[i]
	}
	return out
}

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// Neighbors returns the tiles adjacent to t.
func (g *Grid) Neighbors(t *Tile) []*Tile {
	out := make([]*Tile, 0, len(t.neighbors))
	for _, c := range t.neighbors {
		out = append(out, g.Tile(c))
	}
	return out
}

// markLand records t as land. Duplicates are impossible since membership is a flag.
func (g *Grid) markLand(t *Tile) {
	i := t.pos.Y*g.width + t.pos.X
	if !g.land[i] {
		g.land[i] = true
		g.marked++
	}
}

func (g *Grid) unmarkLand(t *Tile) {
	i := t.pos.Y*g.width + t.pos.X
	if g.land[i] {
		g.land[i] = false
		g.marked--
	}
}

// IsLand reports whether t has been marked as land.
func (g *Grid) IsLand(t *Tile) bool {
	return g.land[t.pos.Y*g.width+t.pos.X]
}

// Classified reports whether ClassifyLandAndSea has run.
func (g *Grid) Classified() bool { return g.classified }

// Land returns the land tiles in row-major order.
func (g *Grid) Land() []*Tile {
	out := make([]*Tile, 0, g.marked)
	for i := range g.tiles {
		if g.land[i] {
			out = append(out, &g.tiles[i])
		}
	}
	return out
}

// Sea returns the sea tiles in row-major order. It is empty until the grid is classified.
func (g *Grid) Sea() []*Tile {
	if !g.classified {
		return nil
	}
	out := make([]*Tile, 0, len(g.tiles)-g.marked)
	for i := range g.tiles {
		if !g.land[i] {
			out = append(out, &g.tiles[i])
		}
	}
	return out
}

// Subset returns the land or sea tiles.
func (g *Grid) Subset(s Subset) []*Tile {
	if s == SubsetSea {
		return g.Sea()
	}
	return g.Land()
}

// ClassifyLandAndSea partitions the grid: every tile not marked as land is sea.
func (g *Grid) ClassifyLandAndSea() {
	g.classified = true
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, border=%d, tiles=%d, land=%d)", g.width, g.height, g.border, len(g.tiles), g.marked)
}
