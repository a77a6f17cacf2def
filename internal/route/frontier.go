// Package route finds weighted paths across the hex grid for river carving.
package route

import (
	"errors"

	"github.com/talgya/hex-kingdom/internal/world"
)

// ErrEmptyFrontier is returned by Pop on an empty frontier. Callers check Empty first;
// seeing this error means the search loop is broken.
var ErrEmptyFrontier = errors.New("frontier is empty")

// Node is a search candidate: a tile, the cheapest known cost to reach it, and the
// route that cost was found along.
type Node struct {
	Tile  *world.Tile
	Cost  float64
	Route []world.Coord
}

// Frontier is a cost-ordered queue of search candidates. Insertion is a linear scan;
// the searches it serves are bounded by the grid size.
type Frontier struct {
	items []*Node
}

// NewFrontier returns a frontier holding start, or an empty one if start is nil.
func NewFrontier(start *Node) *Frontier {
	f := &Frontier{}
	if start != nil {
		f.items = append(f.items, start)
	}
	return f
}

// Push inserts n before the first queued node with a strictly greater cost. If a node for
// the same tile is already queued n is dropped, even when it is cheaper, and Push
// returns false.
func (f *Frontier) Push(n *Node) bool {
	at := len(f.items)
	for i, item := range f.items {
		if item.Tile == n.Tile {
			return false
		}
		if at == len(f.items) && item.Cost > n.Cost {
			at = i
		}
	}
	f.items = append(f.items, nil)
	copy(f.items[at+1:], f.items[at:])
	f.items[at] = n
	return true
}

// Pop removes and returns the cheapest node.
func (f *Frontier) Pop() (*Node, error) {
	if len(f.items) == 0 {
		return nil, ErrEmptyFrontier
	}
	n := f.items[0]
	f.items[0] = nil
	f.items = f.items[1:]
	return n, nil
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int { return len(f.items) }

// Empty reports whether the frontier has no nodes.
func (f *Frontier) Empty() bool { return len(f.items) == 0 }
