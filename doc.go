// Package hamilton enumerates the Hamiltonian cycles of a simple
// undirected graph.
//
// At its core is a reversible cycle-extension search (package search):
// a branch-and-bound walk over a forced-degree-2 "path segment"
// representation of the graph, with an optional DFS-based pruning pass
// that rules out branches whose residual graph can no longer close into
// a single cycle. Every move the search makes is undone by replaying a
// tape of its own prior decisions in reverse, so FirstCycle/NextCycle can be driven to exhaustion (or
// stopped early) without leaking state between calls.
//
// Supporting packages:
//
//	search/     — the cycle-extension engine (Components A-D) and its public API
//	graphio/    — readers for the GraphIO text format and the legacy GnG binary format
//	vertexorder/ — degree-based vertex orderings for the search's anchor walk
//	core/       — a general-purpose, thread-safe graph type, bridged into search via search.FromCore
//	builder/    — constructors for common graph families (complete, cycle, bipartite, ...)
//	dfs/, bfs/  — general-purpose traversal, cycle detection, articulation points, bipartiteness
//
// Two reference commands consume the engine directly:
//
//	cmd/hamcount — counts the Hamiltonian cycles of each graph given
//	cmd/hamlist  — lists every Hamiltonian cycle of each graph given
//
// Quick start:
//
//	g, _ := search.NewGraph("C4", 4)
//	g.CreateEdges(1, []int{2, 4})
//	g.CreateEdges(2, []int{3})
//	g.CreateEdges(3, []int{4})
//
//	s, _ := search.AllocateState(g.N)
//	defer s.Release()
//	_ = s.Init(g, vertexorder.DegreeDescending(g.N, g.Degree))
//
//	for ok := s.FirstCycle(); ok; ok = s.NextCycle() {
//		fmt.Println(s.RotatedCycle())
//	}
package hamilton
