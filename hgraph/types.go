package hgraph

const unfixed = -1

// pinSlot is one occupied position in a hyperedge's pin array: the
// vertex occupying it, plus a back-pointer into that vertex's incident
// array so a swap-remove on either side can fix up the other side in
// O(1).
type pinSlot struct {
	vertex   int32
	backSlot int32 // index into incidents[vertex] pointing back to this edge
}

// incidentSlot is one occupied position in a vertex's incident array:
// the hyperedge it references, plus a back-pointer into that edge's pin
// array.
type incidentSlot struct {
	edge     int32
	backSlot int32 // index into pins[edge] pointing back to this vertex
}

// contractKind distinguishes the two effects Contract can have on a
// hyperedge incident to the contracted-away vertex.
type contractKind uint8

const (
	kindDisable contractKind = iota // v's pin on e is disabled (u already a pin of e)
	kindRewire                      // v's pin slot on e is relabeled to u
)

// ContractionRecord is one entry of the contraction stack: representative
// u, contracted partner v, the pre-contraction weight of u (restored
// verbatim on Uncontract), and the per-edge deltas needed to reverse
// step 2 of Contract.
type ContractionRecord struct {
	U, V       int32
	PreWeightU int64

	// hadParts/partU/partV capture the block weight adjustment made at
	// contract time (if parts were already assigned, i.e. a V-cycle
	// re-coarsening an existing partition) so Uncontract can reverse it
	// using the blocks as they stood then, not whatever they are now.
	hadParts bool
	partU    int32
	partV    int32

	deltas []contractionDelta
}

// contractionDelta carries exactly what Uncontract needs to replay the
// inverse of one hyperedge's contribution to a Contract call.
type contractionDelta struct {
	edge int32
	kind contractKind
	// slot is the pin-array index the vertex occupied in e at the time
	// of the forward operation (before any swap-remove on e's array).
	slot int32
	// vIncidentIdx is, for a rewire delta, the index into
	// incidents[v] describing this edge — needed to reconstruct v's
	// pinSlot exactly on Uncontract, since the forward rewire
	// overwrites that pinSlot's contents in place.
	vIncidentIdx int32
	// decBlock/incBlock record the pinCountInPart adjustment made at
	// contract time (-1 if none), for the same reason partU/partV are
	// captured on ContractionRecord.
	decBlock int32
	incBlock int32
}

// Hypergraph is H = (V, E, ω, c, part): pin/incidence
// arrays, vertex/edge weights, part assignment, and pinCountInPart,
// maintained incrementally. A zero value is not usable; construct with
// New.
type Hypergraph struct {
	k int // number of blocks; 0 before initial partitioning commits

	// Vertex arrays, one entry per vertex id in [0, n).
	vWeight    []int64
	vPart      []int32 // block id, or -1 while unassigned
	vCommunity []int32 // community id, or -1 if none
	vFixed     []int32 // required block, or -1 (unfixed) if free
	vActive    []bool  // false once contracted away
	vIncident  [][]incidentSlot

	// Hyperedge arrays, one entry per edge id in [0, m).
	eWeight []int64
	ePins   [][]pinSlot
	// ePinCount[e][b] = |{v in Pins[e] : part(v) == b}|; resized lazily
	// to k once initial partitioning begins.
	ePinCount [][]int32

	// blockWeight[b] = W(b) = sum of c(v) for part(v)==b.
	blockWeight []int64

	// cmaxnet: hyperedges with more than this many pins are ignored by
	// rating/FM/flow. -1 means unlimited.
	cmaxnet int64

	stack []ContractionRecord

	// edgeMark/markEpoch: scratch used by Contract to test "is u already
	// a pin of e" in O(1) amortised without allocating a fresh set per
	// call.
	edgeMark  []int32
	markEpoch int32
}

// Option configures a Hypergraph at construction time.
type Option func(*Hypergraph)

// WithCommunities assigns a community id to every vertex; ids must have
// length n and will be validated against n in New.
func WithCommunities(ids []int32) Option {
	return func(h *Hypergraph) { h.vCommunity = append([]int32(nil), ids...) }
}

// WithFixedVertices assigns a required block (or unfixed, as -1) to every
// vertex; must have length n.
func WithFixedVertices(blocks []int32) Option {
	return func(h *Hypergraph) { h.vFixed = append([]int32(nil), blocks...) }
}

// WithCMaxNet ignores hyperedges with more than max pins in rating/FM/flow.
// max == -1 means unlimited.
func WithCMaxNet(max int64) Option {
	return func(h *Hypergraph) { h.cmaxnet = max }
}
