package search

// Component D — the search driver.
//
// Binds Components A-C into the branch-and-bound Turing-machine loop: a
// read/write head walking the tape left (unwind, restoring graph state)
// and right (extend, growing the potential cycle), stopping whenever a
// cycle is recognised or the tape is exhausted. The left-direction
// bookkeeping (unrollArc, restoreInArcsWithCount, restoreEdges in the
// reference implementation) is kept as small unexported helpers on
// *Graph/*State; the anchor-decision and pruning logic below follow
// extendAnchor/primeTape/rotateAnchorPoint/restoreAnchorPoint/
// pruneSearchSpace/runTuringMachine(WithPruning) exactly.

// restoreInArcsWithCount reinserts every arc x's adjacency list lost to an
// earlier removeForcedD2InArcs(a) call (a's own list was never touched by
// that removal, only the neighbors' lists were, so walking a.prev again
// visits exactly the arcs that need restoring) and returns how many arcs
// were reinserted.
func (g *Graph) restoreInArcsWithCount(a arcID) int {
	count := 0
	p := g.arcs[a].prev
	for p != a {
		v := g.arcs[p].target
		g.insertArc(v, g.arcs[p].cross)
		g.deg[v]++
		p = g.arcs[p].prev
		count++
	}
	return count
}

// unrollArc undoes one tape entry's effect on the vertex x it absorbed: if
// x was a segment endpoint (ENDPOINT), its dangling out-arc is reinserted
// and its virtual-edge slot cleared; if x became a segment interior vertex
// (FORCED), its virtual-edge partner's own partner is restored to x and
// its residual degree is set back to 2 (plus whatever in-arcs an earlier
// FORCED_DEG2 removal took away).
func (s *State) unrollArc(a arcID, k status) {
	g := s.g
	if k.has(stEndpoint) {
		x := g.arcs[g.arcs[a].cross].target
		g.insertArc(x, a)
		s.e[x] = 0
		return
	}
	if k.has(stForced) {
		x := g.arcs[g.arcs[a].cross].target
		s.e[s.e[x]] = x
		if k.has(stForcedDeg2) {
			g.deg[x] = g.restoreInArcsWithCount(a) + 2
		} else {
			g.deg[x] = 2
		}
	}
}

// removeInArcs removes every in-arc of a's source vertex except a.cross
// itself, tracking any neighbor whose degree drops to exactly 2 on s.d2.
// Called only by extendAnchor, immediately before handing a to
// extendSegments.
func (s *State) removeInArcs(a arcID) {
	g := s.g
	p := g.arcs[a].prev
	for p != a {
		x := g.arcs[p].target
		g.deg[x]--
		if g.deg[x] == 2 {
			s.pushD2(x)
		}
		g.removeArc(x, g.arcs[p].cross)
		p = g.arcs[p].prev
	}
}

// extendAnchor removes vertex x from the graph by marking one or two
// arcs leaving it as a branching decision, then extends segments from
// there. Must only be called while the graph is consistent (every
// remaining vertex has degree >= 3). Returns false if the resulting
// extension hit a stop condition (cycle forced, or a vertex reduced below
// degree 2).
func (s *State) extendAnchor(x int) bool {
	g := s.g

	if ex := s.e[x]; ex != 0 {
		// case 1: x is already a segment endpoint and must be forced onto
		// the potential cycle.
		s.pushAnchorRegion()
		a := g.firstArc(x)
		g.deg[x] = 0
		s.removeInArcs(a)
		return s.extendSegments(a, ex, newAnchorExtend())
	}

	a := g.firstArc(x)
	y := g.arcs[a].target

	if ex := s.e[y]; ex != 0 {
		// case 2: the same situation, but with the arc's endpoints
		// flipped — x's first neighbor y is the one already on a segment.
		a = g.arcs[a].cross
		s.pushAnchorRegion()
		g.deg[y] = 0
		s.removeInArcs(a)
		if !s.extendSegments(a, ex, newFlipSource()) {
			return false
		}
		if g.deg[x] == 0 {
			// x was absorbed by the segment extension above.
			return true
		}
		s.pushAnchorRegion()
		a = g.firstArc(x)
		g.deg[x] = 0
		s.removeInArcs(a)
		return s.extendSegments(a, s.e[x], newAnchorExtend())
	}

	// case 3: neither endpoint is on a segment yet — join them with a new
	// virtual edge and remove the physical arc between them.
	s.pushAnchorRegion()
	cross := g.arcs[a].cross
	g.removeArc(y, cross)
	g.removeArc(x, a)
	s.e[x] = y
	s.e[y] = x
	s.pushTape(cross, newAnchorPoint())
	s.pushAnchorRegion()
	a = g.firstArc(x)
	g.deg[x] = 0
	s.removeInArcs(a)
	return s.extendSegments(a, y, newAnchorExtend())
}

// restoreRemovedEdges reinserts every physical edge set aside by the
// multigraph-removal step in extendSegments' finish_segment phase during
// the currently open decision region.
func (s *State) restoreRemovedEdges() {
	g := s.g
	for _, rm := range s.removedCurrent {
		cross := g.arcs[rm].cross
		u := g.arcs[rm].target
		v := g.arcs[cross].target
		g.insertArc(u, cross)
		g.insertArc(v, rm)
		g.deg[u]++
		g.deg[v]++
	}
}

// primeTape installs any edges forced by the initial vertex degrees
// (degree < 2 halts immediately; a single degree-2 vertex seeds the first
// segment) then repeatedly anchors vertices along the vertex order until
// no further extension is possible. Returns false if the tape is already
// in a state runTuringMachine cannot be usefully entered from.
func (s *State) primeTape() bool {
	g := s.g
	if g.N == 0 {
		return false
	}

	for x := g.N; x >= 1; x-- {
		dx := g.deg[x]
		if dx < 2 {
			return false
		}
		if dx == 2 {
			s.pushD2(x)
		}
	}

	if len(s.d2) > 0 {
		x := s.d2[len(s.d2)-1]
		ex := s.e[x]
		if ex != 0 {
			g.deg[x] = 0
		} else {
			ex = x
		}
		s.popD2()
		if !s.extendSegments(g.firstArc(x), ex, 0) {
			return !s.isHamiltonCycle
		}
	}

	x := 0
	for {
		x = s.nv[x]
		for g.deg[x] == 0 {
			x = s.nv[x]
		}
		if !s.extendAnchor(x) {
			break
		}
	}

	return !s.isHamiltonCycle
}

// unwindSearchEdge walks the tape leftward from hx, undoing each entry's
// effect, until it reaches an anchor point (a branching decision the
// driver can retry) or the terminate sentinel (search space exhausted).
func (s *State) unwindSearchEdge(hx int) int {
	g := s.g
	k := s.tape[hx].status
	for !(k.has(stAnchorPoint) || k.has(stTerminate)) {
		a := s.tape[hx].arc
		x := g.arcs[a].target
		s.unrollArc(a, k)
		g.deg[x] = 2
		s.e[s.e[x]] = x
		hx--
		k = s.tape[hx].status
	}
	return hx
}

// rotateAnchorPoint retries the branching decision at hx with its other
// option: if the decision had forced an extension, that extension is
// undone and the arc it consumed is removed outright (so the next attempt
// at this position won't choose it again); otherwise the virtual edge it
// created is simply dissolved. Returns the vertex the driver should anchor
// next (the flipped endpoint, if the decision used case 2's flip).
func (s *State) rotateAnchorPoint(hx int) int {
	g := s.g
	a := s.tape[hx].arc
	k := s.tape[hx].status
	x := g.arcs[a].target
	c := g.arcs[a].cross
	y := g.arcs[c].target

	if k.has(stAnchorExtend) {
		s.unrollArc(a, k)
		s.e[s.e[x]] = x
		g.deg[x] = 2 + g.restoreInArcsWithCount(c)
		g.removeArc(x, c)
		g.removeArc(y, a)
	} else {
		s.e[x] = 0
		s.e[y] = 0
	}

	s.restoreRemovedEdges()

	// Hand the edge this decision represents to the enclosing region, to
	// be restored when that region itself unwinds: no further search is
	// possible with it until then.
	enclosing := s.popAnchorRegion()
	s.removedCurrent = append([]arcID{a}, enclosing...)

	g.deg[y]--
	if g.deg[y] == 2 {
		s.pushD2(y)
	}
	g.deg[x]--
	if g.deg[x] == 2 {
		s.pushD2(x)
	}

	s.pos = hx - 1

	if k.has(stFlipSource) {
		return y
	}
	return x
}

// restoreAnchorPoint undoes the branching decision at hx for good (the
// enclosing search has moved past needing to retry it), the inverse of
// whichever of extendAnchor's three cases produced it.
func (s *State) restoreAnchorPoint(hx int) {
	g := s.g
	a := s.tape[hx].arc
	k := s.tape[hx].status
	c := g.arcs[a].cross
	x := g.arcs[a].target
	y := g.arcs[c].target

	if k.has(stAnchorExtend) {
		s.unrollArc(a, k)
		s.e[s.e[x]] = x
		g.deg[x] = 2 + g.restoreInArcsWithCount(c)
	} else {
		s.e[x] = 0
		s.e[y] = 0
		g.insertArc(x, c)
		g.insertArc(y, a)
	}

	s.restoreRemovedEdges()
	s.removedCurrent = s.popAnchorRegion()
}

// ensureConsistent absorbs any vertex forced to degree 2 by the decision
// just made at x1 before the driver is allowed to anchor a new vertex; x
// may itself have been absorbed by that forced extension, in which case
// the next live vertex along the ring is returned instead. Returns 0 if
// the forced extension hit a stop condition.
func (s *State) ensureConsistent(x int) int {
	g := s.g
	if len(s.d2) == 0 {
		return x
	}
	y := s.d2[len(s.d2)-1]
	ey := s.e[y]
	if ey != 0 {
		g.deg[y] = 0
	} else {
		ey = y
	}
	s.popD2()
	if !s.extendSegments(g.firstArc(y), ey, 0) {
		return 0
	}
	if g.deg[x] == 0 {
		for g.deg[x] == 0 {
			x = s.nv[x]
		}
	}
	return x
}

// pruneSearchSpace unwinds the tape past every anchor/forced decision
// until c (a budget derived from the DFS analyzer's component/bipartite
// estimate) is exhausted or the tape terminates, then restores every
// anchor point crossed along the way. It implements the "this whole
// branch cannot contain a Hamilton cycle" short-circuit.
func (s *State) pruneSearchSpace(c int) int {
	stop := s.pos
	k := s.tape[stop].status
	for !k.has(stTerminate) && c > 0 {
		if k.has(stAnchorType1) {
			c--
		}
		if k.has(stAnchorPoint) {
			c--
		}
		if k.has(stForcedDeg2) {
			c--
		}
		stop--
		k = s.tape[stop].status
	}
	stop++

	hx := s.unwindSearchEdge(s.pos)
	for hx > stop {
		s.restoreAnchorPoint(hx)
		hx = s.unwindSearchEdge(hx - 1)
	}
	return hx
}

// runTuringMachine drives the tape until a Hamilton cycle is recognised
// (returns true, search can be resumed by calling it again) or the tape
// terminates (returns false, the search space is exhausted).
func (s *State) runTuringMachine() bool {
	g := s.g
	hx := s.unwindSearchEdge(s.pos)
	s.isHamiltonCycle = false

	for !s.tape[hx].status.has(stTerminate) {
		x := s.rotateAnchorPoint(hx)
		x = s.ensureConsistent(x)
		if x != 0 {
			for s.extendAnchor(x) {
				x = s.nv[x]
				for g.deg[x] == 0 {
					x = s.nv[x]
				}
			}
		}

		if s.isHamiltonCycle {
			return true
		}
		hx = s.unwindSearchEdge(s.pos)
	}

	s.pos = hx
	return false
}

// runTuringMachineWithPruning is runTuringMachine augmented with the DFS
// analyzer's cutpoint/bipartite oracle. After each unwind, high (the
// furthest tape position reached) advances if the unwind landed beyond
// it; otherwise pruning is armed when the unwind landed strictly left of
// high and disarmed when it landed exactly on it. While armed, each new
// anchor is tested against the oracle before extending from it, and the
// whole surrounding branch is pruned away if the oracle finds it cannot
// contain a Hamilton cycle.
func (s *State) runTuringMachineWithPruning() bool {
	g := s.g
	low := 0
	high := low
	prune := false

	hx := s.unwindSearchEdge(s.pos)
	s.isHamiltonCycle = false

	for !s.tape[hx].status.has(stTerminate) {
		x1 := s.rotateAnchorPoint(hx)
		x := s.ensureConsistent(x1)

		if x != 0 {
			if prune {
				if x != x1 {
					s.tape[hx].status |= stAnchorType1
				}
				high = low
				c := 1
				for v := s.nv[x]; v != 0; v = s.nv[v] {
					if g.deg[v] != 0 {
						c++
					}
				}

				diff, hasCut := s.an.componentDiff(g, s.e, g.deg, s.nv, x, c, x == x1)
				if hasCut || diff > 0 {
					hx = s.pruneSearchSpace(c)
					continue
				}
				prune = false
			}

			for s.extendAnchor(x) {
				x = s.nv[x]
				for g.deg[x] == 0 {
					x = s.nv[x]
				}
			}
		}

		if s.isHamiltonCycle {
			return true
		}
		hx = s.unwindSearchEdge(s.pos)

		if hx > high {
			high = hx
		} else {
			prune = hx < high
		}
	}

	s.pos = hx
	return false
}

// restoreGraph unwinds the entire tape back to the terminate sentinel,
// restoring the bound Graph to its pristine state.
func (s *State) restoreGraph() {
	hx := s.unwindSearchEdge(s.pos)
	for !s.tape[hx].status.has(stTerminate) {
		s.restoreAnchorPoint(hx)
		hx = s.unwindSearchEdge(hx - 1)
	}
	s.restoreRemovedEdges()
}

// resetStateAndRestoreGraph restores the graph and wipes every piece of
// per-search bookkeeping (virtual edges, tape, removed-edge regions),
// leaving the state ready for a fresh FirstCycle/FirstCycleWithPruning
// call.
func (s *State) resetStateAndRestoreGraph() {
	s.restoreGraph()
	s.isHamiltonian = false
	s.isHamiltonCycle = false

	for i := range s.e {
		s.e[i] = 0
	}
	for i := range s.tape {
		s.tape[i] = tapeEntry{}
	}
	s.pos = 0
	s.tape[len(s.tape)-1].status = stHamiltonian
	s.tape[0].status = stTerminate

	s.removedCurrent = nil
	s.removedStack = s.removedStack[:0]
	s.d2 = s.d2[:0]
}

// FirstCycle resets the search and returns the first Hamilton cycle found,
// without pruning. Returns false if the graph has none.
func (s *State) FirstCycle() bool {
	s.resetStateAndRestoreGraph()
	if s.primeTape() && !s.runTuringMachine() {
		return false
	}
	s.isHamiltonian = s.isHamiltonCycle
	return s.isHamiltonCycle
}

// NextCycle resumes the search from the last cycle FirstCycle or NextCycle
// returned and returns the next Hamilton cycle found. Returns false when
// the search space is exhausted.
func (s *State) NextCycle() bool {
	return s.runTuringMachine()
}

// FirstCycleWithPruning is FirstCycle using the DFS-analyzer pruning
// oracle to cut branches that provably contain no Hamilton cycle.
func (s *State) FirstCycleWithPruning() bool {
	s.resetStateAndRestoreGraph()
	if s.primeTape() && !s.runTuringMachineWithPruning() {
		return false
	}
	s.isHamiltonian = s.isHamiltonCycle
	return s.isHamiltonCycle
}

// NextCycleWithPruning is NextCycle using the pruning oracle.
func (s *State) NextCycleWithPruning() bool {
	return s.runTuringMachineWithPruning()
}

// Release restores the bound Graph to its pristine state and detaches
// this State from it. A released State may be bound to a new Graph via
// Init and reused.
func (s *State) Release() {
	if !s.bound {
		return
	}
	s.restoreGraph()
	s.bound = false
}

// IsHamiltonian reports whether the most recent FirstCycle(WithPruning)
// call found a Hamilton cycle (the value is latched at that call and does
// not change as NextCycle explores further cycles).
func (s *State) IsHamiltonian() bool { return s.isHamiltonian }
