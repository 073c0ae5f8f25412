// Package dfs provides two-coloring (bipartiteness) testing for a core.Graph,
// grounded on the recursive two-color depth-first walk used throughout the
// pack's graph libraries for this problem: color the start vertex, alternate
// colors across each edge, and report the first edge that forces two
// same-colored endpoints together as a witness that the component is not
// bipartite.
package dfs

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/hamilton/core"
)

// Bipartition reports whether the component containing startID is
// bipartite. On success it returns the two color classes as bits.Bits
// indexed against the position of each vertex in g.Vertices(), plus that
// index itself so callers can translate bit positions back to vertex IDs.
// On failure it returns an odd cycle witnessing the non-bipartite edge.
func Bipartition(g *core.Graph, startID string) (bipartite bool, c1, c2 bits.Bits, index []string, oddCycle []string, err error) {
	if g == nil {
		return false, bits.Bits{}, bits.Bits{}, nil, nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return false, bits.Bits{}, bits.Bits{}, nil, nil, ErrStartVertexNotFound
	}

	index = g.Vertices()
	pos := make(map[string]int, len(index))
	for i, v := range index {
		pos[v] = i
	}

	c1 = bits.New(len(index))
	c2 = bits.New(len(index))
	bipartite = true
	var open bool

	var walk func(id string, same, other *bits.Bits)
	walk = func(id string, same, other *bits.Bits) {
		same.SetBit(pos[id], 1)
		nbs, nerr := g.Neighbors(id)
		if nerr != nil {
			err = nerr
			return
		}
		for _, e := range nbs {
			nb := e.To
			if !g.Directed() && !e.Directed && nb == id {
				nb = e.From
			}
			if same.Bit(pos[nb]) == 1 {
				bipartite = false
				oddCycle = []string{nb, id}
				open = true
				return
			}
			if other.Bit(pos[nb]) == 1 {
				continue
			}
			walk(nb, other, same)
			if err != nil {
				return
			}
			if bipartite {
				continue
			}
			switch {
			case !open:
			case id == oddCycle[0]:
				open = false
			default:
				oddCycle = append(oddCycle, id)
			}
			return
		}
	}
	walk(startID, &c1, &c2)
	if err != nil {
		return false, bits.Bits{}, bits.Bits{}, nil, nil, err
	}
	if !bipartite {
		return false, bits.Bits{}, bits.Bits{}, index, oddCycle, nil
	}

	return true, c1, c2, index, nil, nil
}
