// Package dfs also computes articulation points (cutpoints) of a core.Graph
// component via Tarjan's low-link walk, the same discovery/low-link
// recurrence the search engine's own analyzer runs internally over its
// arena-backed graph, generalized here to core.Graph's string-keyed
// vertices for standalone use.
package dfs

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/hamilton/core"
)

// ArticulationPoints returns the cutpoints of the component containing
// startID: vertices whose removal increases that component's count of
// connected pieces. The root of the walk is an articulation point only if
// it has more than one child in the resulting DFS tree.
func ArticulationPoints(g *core.Graph, startID string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	index := g.Vertices()
	pos := make(map[string]int, len(index))
	for i, v := range index {
		pos[v] = i
	}

	visited := bits.New(len(index))
	isCut := bits.New(len(index))
	disc := make([]int, len(index))
	low := make([]int, len(index))
	clock := 0

	var walk func(id, parent string) error
	walk = func(id, parent string) error {
		p := pos[id]
		visited.SetBit(p, 1)
		clock++
		disc[p] = clock
		low[p] = clock
		children := 0

		nbs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		for _, e := range nbs {
			nb := e.To
			if !g.Directed() && !e.Directed && nb == id {
				nb = e.From
			}
			if nb == parent {
				continue
			}
			np := pos[nb]
			if visited.Bit(np) == 1 {
				if disc[np] < low[p] {
					low[p] = disc[np]
				}
				continue
			}
			children++
			if err := walk(nb, id); err != nil {
				return err
			}
			if low[np] < low[p] {
				low[p] = low[np]
			}
			if parent != "" && low[np] >= disc[p] {
				isCut.SetBit(p, 1)
			}
		}
		if parent == "" && children > 1 {
			isCut.SetBit(p, 1)
		}
		return nil
	}
	if err := walk(startID, ""); err != nil {
		return nil, err
	}

	var cuts []string
	for i, v := range index {
		if visited.Bit(i) == 1 && isCut.Bit(i) == 1 {
			cuts = append(cuts, v)
		}
	}
	return cuts, nil
}
