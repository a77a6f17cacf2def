package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/hex-kingdom/internal/world"
)

// ErrNoRoute is returned when the frontier runs dry before any goal tile is reached.
// It is an expected outcome, not a failure of the grid.
var ErrNoRoute = errors.New("no route found")

// Route is an ordered list of positions from the origin towards a goal.
type Route []world.Coord

// unreached is the starting cost of every tile except the origin.
const unreached = math.MaxFloat64

// FindRoute searches outward from origin for the cheapest reachable tile next to one
// matching goal, using tile weights as step costs. The returned route starts at origin
// and stops before the goal tile.
//
// Water rules apply: once the search has stepped onto plains it no longer enters hills,
// and tiles carrying any feature are never entered. Each tile's cost is fixed on its
// first relaxation.
func FindRoute(g *world.Grid, origin world.Coord, goal world.Match) (Route, error) {
	start := g.Tile(origin)
	if start == nil {
		return nil, fmt.Errorf("origin %v: %w", origin, ErrNoRoute)
	}

	nodes := make([]Node, g.Len())
	for _, t := range g.Tiles() {
		nodes[index(g, t.Pos())] = Node{Tile: t, Cost: unreached}
	}
	first := &nodes[index(g, origin)]
	first.Cost = 0
	first.Route = Route{origin}

	queue := NewFrontier(first)
	visited := make([]bool, g.Len())
	belowHill := false

	for !queue.Empty() {
		current, err := queue.Pop()
		if err != nil {
			return nil, err
		}

		for _, nc := range current.Tile.Neighbors() {
			i := index(g, nc)
			if visited[i] {
				continue
			}
			next := &nodes[i]

			if belowHill && next.Tile.Kind == world.KindHill {
				continue
			}
			if goal.Tile(next.Tile) {
				return Route(current.Route), nil
			}
			if next.Tile.Feature != world.FeatureEmpty {
				continue
			}
			if next.Tile.Kind == world.KindPlains {
				belowHill = true
			}
			if next.Cost != unreached {
				continue
			}

			next.Cost = current.Cost + next.Tile.Weight
			next.Route = append(append(make([]world.Coord, 0, len(current.Route)+1), current.Route...), nc)
			queue.Push(next)
		}

		visited[index(g, current.Tile.Pos())] = true
	}

	return nil, ErrNoRoute
}

func index(g *world.Grid, c world.Coord) int {
	return c.Y*g.Width() + c.X
}
