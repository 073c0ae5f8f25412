package search

// Component C — the segment extender.
//
// extendSegments forces degree-2 vertices into path segments, appending
// one tape entry per vertex absorbed. The reference implementation
// encodes the "keep extending in this direction, or swap to the other
// side, or finish this segment and look for the next one" state machine
// with `goto extend_segment` / `goto finish_segment`; this is reformulated
// as an explicit loop over two named modes, switching on the arc case
// (cycle forced / virtual-edge collision / plain degree-2 hop / cannot
// extend) and on the residual degree of the target, exactly as directed —
// tape writes remain the loop's sole side-effecting invariant.
type extendMode int

const (
	modeExtend extendMode = iota
	modeFinish
)

// extendSegments is entered with a starting arc a, the segment's current
// far endpoint z (initially the segment's own source when starting
// fresh), and the status bits k to stamp on the first tape entry it
// writes. It returns false when the extension hit a stop condition: a
// forced cycle (State.isHamiltonCycle then reflects whether that cycle is
// the acceptance cycle) or a vertex reduced below degree 2 (a
// contradiction, left for the driver's unwind to discover). It returns
// true once every pending degree-2 vertex has been absorbed and the
// residual graph is consistent again.
func (s *State) extendSegments(a arcID, z int, k status) bool {
	g := s.g
	mode := modeExtend
	hz := 0 // tape index for the segment's other endpoint, 0 = none
	hx := 0 // tape index for the endpoint currently under extension
	var x int

	for {
		switch mode {
		case modeExtend:
			c := g.arcs[a].cross
			tx := g.arcs[a].target

			hx = s.pushTape(c, 0)

			if tx == z {
				// a cycle is forced
				if hz != 0 {
					s.fixInArc(s.tapeAt(hz), z)
				}
				g.deg[g.arcs[c].target] = 2
				s.pos = hx - 1
				s.isHamiltonCycle = s.tape[hx+1].status.has(stHamiltonian)
				return false
			}

			if ex := s.e[tx]; ex != 0 {
				// the arc has collided with a virtual edge
				if g.deg[tx] > 2 {
					if s.removeForcedD2InArcs(c) {
						if hz != 0 {
							s.fixInArc(s.tapeAt(hz), z)
						}
						s.tapeAt(hx).status = k
						s.pos = hx
						return false
					}
					s.tapeAt(hx).status = newForcedDeg2(k)
				} else {
					s.tapeAt(hx).status = newForced(k)
				}
				g.deg[tx] = 0

				if g.deg[ex] != 2 {
					if g.deg[z] != 2 {
						x = ex
						mode = modeFinish
						continue
					}
					// force the other endpoint onto the cycle and keep
					// growing the segment in the x->z direction
					a = g.lastArc(z)
					g.deg[z] = 0
					if hz != 0 {
						s.fixInArc(s.tapeAt(hz), z)
					}
					z = ex
					hz = hx
					k = 0
					continue
				}

				// keep growing the segment in the current direction
				k = 0
				g.deg[ex] = 0
				a = g.firstArc(ex)
				continue
			}

			if g.deg[tx] == 2 {
				// plain degree-2 hop
				s.tapeAt(hx).status = k
				k = 0
				g.deg[tx] = 0
				a = g.arcs[c].prev
				continue
			}

			// cannot extend further in this direction
			s.tapeAt(hx).status = newEndpoint(k)
			g.removeArc(tx, c)

			if g.deg[z] != 2 {
				x = tx
				mode = modeFinish
				continue
			}
			a = g.lastArc(z)
			if hz != 0 {
				s.fixInArc(s.tapeAt(hz), z)
			}
			g.deg[z] = 0
			z = tx
			hz = hx
			k = 0
			continue

		case modeFinish:
			// The new segment's endpoints are x and z. A multigraph may
			// have been created if x and z are also physically adjacent;
			// remove that actual edge to take away the multigraph status.
			var found arcID
			if g.deg[z] < g.deg[x] {
				for p := g.firstArc(z); p != 0; p = g.arcs[p].next {
					if g.arcs[p].target == x {
						found = p
						break
					}
				}
			} else {
				for p := g.firstArc(x); p != 0; p = g.arcs[p].next {
					if g.arcs[p].target == z {
						found = p
						break
					}
				}
			}

			if found != 0 {
				cross := g.arcs[found].cross
				g.removeArc(g.arcs[found].target, cross)
				g.removeArc(g.arcs[cross].target, found)
				s.removedCurrent = append(s.removedCurrent, found)

				g.deg[x]--
				if g.deg[x] == 2 {
					g.deg[z]--
					g.deg[x] = 0
					a = g.lastArc(x)
					s.fixInArc(s.tapeAt(hx), x)
					k = 0
					mode = modeExtend
					continue
				}

				g.deg[z]--
				if g.deg[z] == 2 {
					a = g.lastArc(z)
					if hz != 0 {
						s.fixInArc(s.tapeAt(hz), z)
					}
					g.deg[z] = 0
					hz = hx
					z = x
					k = 0
					mode = modeExtend
					continue
				}
			}

			// the new virtual edge is consistent within its local area
			s.e[z] = x
			s.e[x] = z

			nx := s.nextLiveD2()
			if nx == 0 {
				s.pos = hx
				return true
			}

			var nz int
			if ez := s.e[nx]; ez != 0 {
				g.deg[nx] = 0
				nz = ez
			} else {
				nz = nx
			}
			a = g.firstArc(nx)
			hz = 0
			k = 0
			z = nz
			mode = modeExtend
			continue
		}
	}
}

// removeForcedD2InArcs removes every arc into x except a.cross (a is the
// x->previous arc already folded into the segment; its cross is the
// surviving in-arc), walking x's adjacency list starting at a.prev and
// wrapping via the head.prev == tail invariant. It returns true
// (contradiction) if any affected neighbor would drop below degree 2, in
// which case every removal already performed is rolled back before
// returning.
func (s *State) removeForcedD2InArcs(a arcID) bool {
	g := s.g

	p := g.arcs[a].prev
	for p != a {
		y := g.arcs[p].target
		dy := g.deg[y]
		if dy == 2 {
			break
		}
		dy--
		if dy == 2 {
			s.pushD2(y)
		}
		g.deg[y] = dy
		g.removeArc(y, g.arcs[p].cross)
		p = g.arcs[p].prev
	}

	if p != a {
		q := g.arcs[a].prev
		for q != p {
			y := g.arcs[q].target
			g.deg[y]++
			g.insertArc(y, g.arcs[q].cross)
			q = g.arcs[q].prev
		}
		return true
	}

	return false
}
