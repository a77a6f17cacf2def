package world

import "math"

// CountNeighbors counts how many of coords hold a tile matching m.
func (g *Grid) CountNeighbors(m Match, coords []Coord) int {
	n := 0
	for _, c := range coords {
		if t := g.Tile(c); t != nil && m.Tile(t) {
			n++
		}
	}
	return n
}

// RectContains reports whether any tile in the window around (cx, cy) matches m.
// Offsets on each axis run from floor(-r/2) up to but excluding ceil(r/2), so a range of
// 1 covers {-1, 0} and a range of 6 covers {-3 .. 2}. Cells off the grid are skipped.
func (g *Grid) RectContains(m Match, cx, cy, xRange, yRange int) bool {
	x0, x1 := window(xRange)
	y0, y1 := window(yRange)
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			t := g.At(cx+dx, cy+dy)
			if t == nil {
				continue
			}
			if m.Tile(t) {
				return true
			}
		}
	}
	return false
}

func window(r int) (lo, hi int) {
	half := float64(r) / 2
	return int(math.Floor(-half)), int(math.Ceil(half))
}

// ClampToBorder clamps v into [border, dimension-border] on the given axis.
func (g *Grid) ClampToBorder(a Axis, v int) int {
	dim := g.width
	if a == AxisY {
		dim = g.height
	}
	if v < g.border {
		return g.border
	}
	if v > dim-g.border {
		return dim - g.border
	}
	return v
}

// FeatureFreeNeighbors returns the neighbours of t whose feature is not excluded.
func (g *Grid) FeatureFreeNeighbors(t *Tile, excluded Feature) []*Tile {
	var out []*Tile
	for _, c := range t.neighbors {
		n := g.Tile(c)
		if n.Feature != excluded {
			out = append(out, n)
		}
	}
	return out
}

// PromoteIfSurrounded sets newKind on every tile of the subset that has at least
// minCount neighbours matching m. If only is given, tiles whose current kind is not
// listed are left alone. Tiles are visited in row-major order and promoted in place,
// so an earlier promotion can affect a later count. Returns the number promoted.
func (g *Grid) PromoteIfSurrounded(s Subset, newKind Kind, m Match, minCount int, only ...Kind) int {
	promoted := 0
	for _, t := range g.Subset(s) {
		if len(only) > 0 && !kindIn(t.Kind, only) {
			continue
		}
		if g.CountNeighbors(m, t.neighbors) >= minCount {
			t.SetKind(newKind)
			promoted++
		}
	}
	return promoted
}

func kindIn(k Kind, ks []Kind) bool {
	for _, c := range ks {
		if c == k {
			return true
		}
	}
	return false
}
