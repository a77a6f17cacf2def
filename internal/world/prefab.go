package world

// Prefab is a fixed cluster shape stamped around a centre tile.
type Prefab uint8

const (
	PrefabBone     Prefab = iota // centre plus the four raw y/x neighbours; builds landmass
	PrefabHill                   // centre and the tile below
	PrefabMountain               // centre, below, left and right
)

func (p Prefab) String() string {
	switch p {
	case PrefabBone:
		return "bone"
	case PrefabHill:
		return "hill"
	case PrefabMountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// offsets returns the (x, y) offsets written by the prefab, centre first.
func (p Prefab) offsets() []Coord {
	switch p {
	case PrefabBone:
		return []Coord{{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	case PrefabHill:
		return []Coord{{0, 0}, {0, 1}}
	case PrefabMountain:
		return []Coord{{0, 0}, {0, 1}, {-1, 0}, {1, 0}}
	default:
		return nil
	}
}

// Stamp writes kind k onto the prefab cluster centred on (cy, cx). Cells off the grid are
// skipped. Writing a land kind marks the tile as land, writing sea clears it. Returns
// false if the border guard rejected the centre or the prefab is unknown.
func (g *Grid) Stamp(k Kind, p Prefab, cy, cx int) bool {
	if g.rejectCentre(cy, cx) {
		return false
	}
	offs := p.offsets()
	if offs == nil {
		return false
	}
	for _, off := range offs {
		t := g.At(cx+off.X, cy+off.Y)
		if t == nil {
			continue
		}
		t.SetKind(k)
		if k == KindSea {
			g.unmarkLand(t)
		} else {
			g.markLand(t)
		}
	}
	return true
}

func (g *Grid) rejectCentre(cy, cx int) bool {
	if g.strictBorder {
		return cy < g.border || cy > g.height-g.border ||
			cx < g.border || cx > g.width-g.border
	}
	// Observed guard: a conjunction that only fires when the margins overlap.
	return (cy < g.border && cy > g.height-g.border) ||
		(cx < g.border && cx > g.width-g.border)
}
