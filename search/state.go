package search

// tapeEntry is one position on the reversible tape: the arc whose
// traversal it records (stored as its cross, so replaying in the negative
// direction always finds the vertex to restore via arc.target), and the
// status bitset describing how to undo it.
type tapeEntry struct {
	arc    arcID
	status status
}

// State is a search session: one borrowed Graph store, one DFS analyzer
// (Component B), and the reversible tape/virtual-edge/removed-edges/
// vertex-order bookkeeping Components C and D mutate as they explore and
// backtrack (Component A is the Graph itself).
//
// A State is not safe for concurrent use: every public method assumes it
// is the only goroutine touching the bound Graph and its own buffers at
// that moment. This mirrors the strictly single-threaded contract of the
// search core (see SPEC_FULL.md §5) rather than core.Graph's own
// mutex-guarded concurrency model — the two types solve different
// problems and are deliberately not given the same concurrency contract.
type State struct {
	g   *Graph
	an  *analyzer
	pos int // current tape head (index into tape)

	tape []tapeEntry
	e    []int // virtual edge map, E[x], 1..N
	d2   []int // stack of vertices recently reduced to degree 2

	removedCurrent []arcID   // edges physically removed during the open decision region
	removedStack   [][]arcID // one saved list per enclosing anchor

	nv          []int // next-vertex ring
	vertexOrder []int // order used to build nv, retained for Release/reset

	isHamiltonian   bool
	isHamiltonCycle bool

	pristine snapshot
	bound    bool
}

// AllocateState reserves the buffers for a search session over n vertices.
func AllocateState(n int) (*State, error) {
	if n < 0 || n > MaxVertices {
		return nil, ErrTooManyVertices
	}
	s := &State{
		an:   newAnalyzer(n),
		tape: make([]tapeEntry, n+2),
		e:    make([]int, n+1),
		d2:   make([]int, 0, n+1),
		nv:   make([]int, n+1),
	}
	return s, nil
}

// Init binds the state to a graph and an initial vertex order (a
// permutation of 1..N, e.g. from package vertexorder). It mirrors
// initHCState: building the nv ring and priming the tape's sentinels.
func (s *State) Init(g *Graph, vertexOrder []int) error {
	if g == nil || g.N != len(s.e)-1 {
		return ErrMissingReference
	}
	s.g = g
	s.vertexOrder = append([]int(nil), vertexOrder...)
	s.rebuildRing()
	s.tape[0].status = stTerminate
	s.tape[len(s.tape)-1].status = stHamiltonian
	s.pristine = g.snapshot()
	s.bound = true
	return nil
}

func (s *State) rebuildRing() {
	for i := range s.nv {
		s.nv[i] = 0
	}
	order := s.vertexOrder
	if len(order) == 0 {
		return
	}
	for i := 0; i+1 < len(order); i++ {
		s.nv[order[i]] = order[i+1]
	}
	s.nv[order[len(order)-1]] = 0
	// nv[0] is the ring's "before anything" slot the driver starts at.
	s.nv[0] = order[0]
}

// pushTape appends one entry and advances pos, returning its index.
func (s *State) pushTape(a arcID, st status) int {
	s.pos++
	s.tape[s.pos] = tapeEntry{arc: a, status: st}
	return s.pos
}

func (s *State) tapeAt(i int) *tapeEntry { return &s.tape[i] }

// pushD2 marks x as a vertex whose residual degree just dropped to 2.
func (s *State) pushD2(x int) { s.d2 = append(s.d2, x) }

// popD2 pops the most recently pushed degree-2 vertex, or 0 if the stack
// is empty.
func (s *State) popD2() int {
	if len(s.d2) == 0 {
		return 0
	}
	x := s.d2[len(s.d2)-1]
	s.d2 = s.d2[:len(s.d2)-1]
	return x
}

// nextLiveD2 pops degree-2 markers until finding one whose residual
// degree is still nonzero (earlier pushes may have since been absorbed,
// degree dropped to 0, by another segment extending through them), or the
// stack empties.
func (s *State) nextLiveD2() int {
	for {
		x := s.popD2()
		if x == 0 || s.g.deg[x] != 0 {
			return x
		}
	}
}

// pushAnchorRegion saves the currently-open removed-edges list onto the
// stack and starts a fresh, empty one — one entry per enclosing anchor.
func (s *State) pushAnchorRegion() {
	s.removedStack = append(s.removedStack, s.removedCurrent)
	s.removedCurrent = nil
}

// popAnchorRegion restores the previous anchor's removed-edges list.
func (s *State) popAnchorRegion() []arcID {
	n := len(s.removedStack)
	top := s.removedStack[n-1]
	s.removedStack = s.removedStack[:n-1]
	return top
}

// fixInArc clears ENDPOINT from a segment-endpoint's tape entry,
// reinserting its dangling arc if it had one. Called only by extender
// logic when an endpoint is about to be subsumed by further extension.
func (s *State) fixInArc(te *tapeEntry, x int) {
	if te.status.has(stEndpoint) {
		s.g.insertArc(x, te.arc)
		te.status &^= stEndpoint
	}
}
