package search

import (
	"sort"

	"github.com/katalvlaran/hamilton/core"
)

// FromCore builds a search Graph from a core.Graph snapshot, returning the
// vertex labels in the order assigned (label i corresponds to search vertex
// i+1). A directed graph, or one carrying a directed edge, is rejected with
// ErrUnsupportedGraph: the cycle-extension engine only operates on simple
// undirected graphs. Self-loops are dropped, since they can never lie on a
// Hamilton cycle.
//
// core.Graph's vertex/edge IDs are arbitrary strings; this engine addresses
// vertices by small dense integers (see arcgraph.go), so FromCore assigns
// each vertex a position by sorting core.Graph.Vertices() for a
// deterministic, reproducible mapping.
func FromCore(g *core.Graph) (graph *Graph, labels []string, err error) {
	if g.Directed() || g.HasDirectedEdges() {
		return nil, nil, ErrUnsupportedGraph
	}

	ids := g.Vertices()
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i + 1
	}

	sg, err := NewGraph("", len(ids))
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		sg.CreateEdge(u, v)
	}

	return sg, ids, nil
}
