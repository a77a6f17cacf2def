package terrain

import (
	"math"

	"github.com/talgya/hex-kingdom/internal/world"
)

// maxCentreDraws bounds the resampling of a second landmass centre.
const maxCentreDraws = 1000

// landmass lays down every landmass instance, then partitions the grid into land and sea.
// Each instance is a line of bone prefabs between two well separated centres.
func (r *run) landmass() error {
	p := r.params
	count := times(p.LandmassCount * p.LandmassModifier)
	for i := 0; i < count; i++ {
		a := r.firstCentre()
		b := r.secondCentre(a)
		if b.X < a.X {
			a, b = b, a
		}
		r.stampBetween(a, b)
	}
	r.grid.ClassifyLandAndSea()
	r.log.Debug("landmass placed", "instances", count, "land", len(r.grid.Land()))
	return nil
}

// firstCentre can land anywhere in the interior, biased towards the lower rows.
func (r *run) firstCentre() world.Coord {
	g := r.grid
	x := intInRange(r.rng, g.Border(), g.Width()-g.Border())
	y := intInRange(r.rng, g.Border()+g.Height()/4, g.Height()-g.Border())
	return world.Coord{X: x, Y: y}
}

// secondCentre is at least a fifth of the map away from a on each axis.
func (r *run) secondCentre(a world.Coord) world.Coord {
	g := r.grid
	w, h := g.Width(), g.Height()

	xlo := g.ClampToBorder(world.AxisX, a.X-w/2)
	xhi := g.ClampToBorder(world.AxisX, a.X+w/2)
	x, ok := r.drawApart(a.X, xlo, xhi, w)
	if !ok {
		x = farthest(a.X, g.Border(), w-g.Border())
	}

	ylo, yhi := g.Border(), h-g.Border()
	y, ok := r.drawApart(a.Y, ylo, yhi, h)
	if !ok {
		y = farthest(a.Y, ylo, yhi)
	}

	return world.Coord{X: x, Y: y}
}

// drawApart draws from [lo, hi] until the value is at least dim/5 away from from.
func (r *run) drawApart(from, lo, hi, dim int) (int, bool) {
	for i := 0; i < maxCentreDraws; i++ {
		v := intInRange(r.rng, lo, hi)
		if 5*abs(v-from) >= dim {
			return v, true
		}
	}
	return 0, false
}

func farthest(from, lo, hi int) int {
	if abs(from-lo) >= abs(hi-from) {
		return lo
	}
	return hi
}

// stampBetween places bone prefabs at random points on the line from a to b, a.X <= b.X.
func (r *run) stampBetween(a, b world.Coord) {
	g := r.grid
	p := r.params

	gradient := 0.0
	if b.X != a.X {
		gradient = float64(b.Y-a.Y) / float64(b.X-a.X)
	}

	for i := 0; i < times(p.GenerationCount*p.GenerationModifier); i++ {
		x := intInRange(r.rng, a.X, b.X)
		y := int(math.Floor(float64(a.Y) + float64(x-a.X)*gradient))
		y = g.ClampToBorder(world.AxisY, y)
		x = g.ClampToBorder(world.AxisX, x)
		g.Stamp(world.KindPlains, world.PrefabBone, y, x)
	}
}
