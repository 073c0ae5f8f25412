package search

// CurrentCycle reports, for every vertex 1..N, its two neighbors along the
// Hamilton cycle currently held on the tape. first[x] and second[x] are
// the pair; their relative order is arbitrary (whichever tape entry
// reached x first claims first[x]), matching getCurrentHamiltonianCycle's
// v/v+N convention.
func (s *State) CurrentCycle() (first, second []int) {
	g := s.g
	n := g.N
	first = make([]int, n+1)
	second = make([]int, n+1)

	for i := 1; i <= n; i++ {
		a := s.tape[i].arc
		x := g.arcs[a].target
		y := g.arcs[g.arcs[a].cross].target

		if first[x] != 0 {
			second[x] = y
		} else {
			first[x] = y
		}
		if first[y] != 0 {
			second[y] = x
		} else {
			first[y] = x
		}
	}
	return first, second
}

// CurrentCycleEdges returns every edge of the Hamilton cycle currently
// held on the tape, one (arc.target, arc.cross.target) pair per edge, in
// tape-write order, i.e. the order in which the search discovered them.
func (s *State) CurrentCycleEdges() [][2]int {
	g := s.g
	n := g.N
	edges := make([][2]int, n)

	for i := 1; i <= n; i++ {
		a := s.tape[i].arc
		x := g.arcs[a].target
		y := g.arcs[g.arcs[a].cross].target
		edges[i-1] = [2]int{x, y}
	}
	return edges
}

// RotatedCycle walks CurrentCycle's neighbor pairs starting from vertex 1
// and returns the vertices visited after it, in traversal order, ending
// with vertex 1 itself — i.e. the cycle (1, RotatedCycle()...) is the full
// cycle written starting and ending at vertex 1, oriented toward whichever
// of vertex 1's two neighbors CurrentCycle happened to list first.
func (s *State) RotatedCycle() []int {
	first, second := s.CurrentCycle()
	n := s.g.N
	out := make([]int, 0, n)

	u, pu := 1, 0
	for {
		v := first[u]
		if v != pu {
			pu = u
			u = v
		} else {
			pu = u
			u = second[u]
		}
		out = append(out, u)
		if u == 1 {
			break
		}
	}
	return out
}
