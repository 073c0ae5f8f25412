package search

// status is the packed bitset carried by each tape entry. Rather than
// building these with ad-hoc OR chains at each call site, every
// transition the driver or extender can produce gets a named constructor
// below, per the re-architecture of the reference implementation's
// status enum mandated for this engine.
type status uint16

const (
	stEndpoint     status = 1 << iota // entry ends a segment that could not grow further
	stAnchorPoint                     // entry is a branching decision
	stAnchorExtend                    // anchor immediately forced an extension
	stFlipSource                      // anchor's chosen arc was the cross of L[x]
	stAnchorType1                     // rotation returned a pivot different from its input
	stForcedDeg2                      // in-arcs into this vertex were force-removed
	stForced                          // vertex became a segment interior vertex
	stPruneOnce                       // reserved for a single pruning attempt at this entry
	stPruneTest                       // reserved: entry was produced under an active prune test
	stHamiltonian                     // right sentinel: reaching here is acceptance
	stTerminate                       // left sentinel: tape exhausted
)

func (s status) has(bit status) bool { return s&bit != 0 }

// newAnchorPoint builds the status for anchor case 3 ("neither"): a plain
// branching decision with no immediate forced extension.
func newAnchorPoint() status { return stAnchorPoint }

// newAnchorExtend builds the status for anchor case 1 (x already a segment
// endpoint).
func newAnchorExtend() status { return stAnchorPoint | stAnchorExtend }

// newFlipSource builds the status for anchor case 2 (x's first neighbor is
// itself a segment endpoint).
func newFlipSource() status { return stAnchorPoint | stAnchorExtend | stFlipSource }

// withType1 tags an anchor entry as type-1 (rotation changed the pivot),
// used by the pruning driver to weight prune counts.
func (s status) withType1() status { return s | stAnchorType1 }

// newEndpoint builds the status recorded when a segment cannot grow past
// its current end (extender cases 2b and 4).
func newEndpoint(k status) status { return k | stEndpoint }

// newForcedDeg2 builds the status recorded when removeForcedD2InArcs
// succeeded while absorbing a virtual-edge collision.
func newForcedDeg2(k status) status { return k | stForcedDeg2 | stForced }

// newForced builds the status recorded for a virtual-edge collision that
// needed no in-arc removal (deg[x] was already 2).
func newForced(k status) status { return k | stForced }
