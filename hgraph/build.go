package hgraph

import "fmt"

// New constructs a Hypergraph with n vertices and the given hyperedges.
// pins[e] lists the (0-based) vertex ids of hyperedge e; edgeWeight and
// vertexWeight give ω(e) and c(v). A nil vertexWeight defaults every
// vertex to weight 1; a nil edgeWeight defaults every edge to weight 1.
//
// part is initialised to "unassigned" (⊥) for every vertex; callers
// run coarsening and initial partitioning before any ChangeNodePart
// call is meaningful.
//
// Complexity: O(n + Σ|pins[e]|).
func New(n int, pins [][]int32, edgeWeight, vertexWeight []int64, opts ...Option) (*Hypergraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("hgraph.New: %w", ErrEmptyHypergraph)
	}

	h := &Hypergraph{
		cmaxnet: -1,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.vWeight = make([]int64, n)
	for i := range h.vWeight {
		if vertexWeight != nil {
			h.vWeight[i] = vertexWeight[i]
		} else {
			h.vWeight[i] = 1
		}
	}
	h.vPart = make([]int32, n)
	for i := range h.vPart {
		h.vPart[i] = -1
	}
	h.vActive = make([]bool, n)
	for i := range h.vActive {
		h.vActive[i] = true
	}
	h.vIncident = make([][]incidentSlot, n)

	if h.vCommunity == nil {
		h.vCommunity = make([]int32, n)
		for i := range h.vCommunity {
			h.vCommunity[i] = -1
		}
	} else if len(h.vCommunity) != n {
		return nil, fmt.Errorf("hgraph.New: community ids: %w", ErrVertexRange)
	}
	if h.vFixed == nil {
		h.vFixed = make([]int32, n)
		for i := range h.vFixed {
			h.vFixed[i] = unfixed
		}
	} else if len(h.vFixed) != n {
		return nil, fmt.Errorf("hgraph.New: fixed blocks: %w", ErrVertexRange)
	}

	m := len(pins)
	h.ePins = make([][]pinSlot, m)
	h.eWeight = make([]int64, m)
	for e := range pins {
		if edgeWeight != nil {
			h.eWeight[e] = edgeWeight[e]
		} else {
			h.eWeight[e] = 1
		}
		seen := make(map[int32]bool, len(pins[e]))
		slots := make([]pinSlot, 0, len(pins[e]))
		for _, v := range pins[e] {
			if v < 0 || int(v) >= n {
				return nil, fmt.Errorf("hgraph.New: edge %d: %w", e, ErrVertexRange)
			}
			if seen[v] {
				return nil, fmt.Errorf("hgraph.New: edge %d: %w", e, ErrMalformedPins)
			}
			seen[v] = true
			backSlot := int32(len(h.vIncident[v]))
			h.vIncident[v] = append(h.vIncident[v], incidentSlot{edge: int32(e), backSlot: int32(len(slots))})
			slots = append(slots, pinSlot{vertex: v, backSlot: backSlot})
		}
		h.ePins[e] = slots
	}

	return h, nil
}

// N returns the number of vertices (including contracted-away ones).
func (h *Hypergraph) N() int { return len(h.vWeight) }

// M returns the number of hyperedges (including fully contracted ones).
func (h *Hypergraph) M() int { return len(h.ePins) }

// K returns the configured number of blocks, or 0 before SetK is called.
func (h *Hypergraph) K() int { return h.k }

// SetK fixes the number of blocks and allocates pinCountInPart storage.
// Must be called once, before any ChangeNodePart, typically right before
// initial partitioning.
func (h *Hypergraph) SetK(k int) error {
	if k < 2 {
		return fmt.Errorf("hgraph.SetK: %w", ErrBlockRange)
	}
	h.k = k
	h.blockWeight = make([]int64, k)
	h.ePinCount = make([][]int32, len(h.ePins))
	for e := range h.ePinCount {
		h.ePinCount[e] = make([]int32, k)
	}
	return nil
}

// VertexWeight returns c(v).
func (h *Hypergraph) VertexWeight(v int32) int64 { return h.vWeight[v] }

// EdgeWeight returns ω(e).
func (h *Hypergraph) EdgeWeight(e int32) int64 { return h.eWeight[e] }

// Part returns part(v), or -1 if unassigned.
func (h *Hypergraph) Part(v int32) int32 { return h.vPart[v] }

// IsActive reports whether v has not been contracted away.
func (h *Hypergraph) IsActive(v int32) bool { return h.vActive[v] }

// Community returns v's community id, or -1 if none.
func (h *Hypergraph) Community(v int32) int32 { return h.vCommunity[v] }

// FixedBlock returns v's required block, or -1 if v is free.
func (h *Hypergraph) FixedBlock(v int32) int32 { return h.vFixed[v] }

// IsFixed reports whether v must remain in a declared block.
func (h *Hypergraph) IsFixed(v int32) bool { return h.vFixed[v] != unfixed }

// BlockWeight returns W(b).
func (h *Hypergraph) BlockWeight(b int32) int64 { return h.blockWeight[b] }

// TotalWeight returns W(V) = Σ c(v) over active vertices.
func (h *Hypergraph) TotalWeight() int64 {
	var total int64
	for v := range h.vWeight {
		if h.vActive[v] {
			total += h.vWeight[v]
		}
	}
	return total
}

// PinCountInPart returns pinCountInPart(e, b).
func (h *Hypergraph) PinCountInPart(e int32, b int32) int32 { return h.ePinCount[e][b] }

// EdgeSize returns |Pins[e]|, the number of currently active pins.
func (h *Hypergraph) EdgeSize(e int32) int { return len(h.ePins[e]) }

// IsLargeEdge reports whether e exceeds the configured cmaxnet threshold
// and should be ignored by rating/FM/flow.
func (h *Hypergraph) IsLargeEdge(e int32) bool {
	if h.cmaxnet < 0 {
		return false
	}
	return int64(len(h.ePins[e])) > h.cmaxnet
}

// ForEachPin calls fn for every active pin of e exactly once.
func (h *Hypergraph) ForEachPin(e int32, fn func(v int32)) {
	for _, s := range h.ePins[e] {
		fn(s.vertex)
	}
}

// ForEachIncidentEdge calls fn for every hyperedge where v is an active
// pin exactly once.
func (h *Hypergraph) ForEachIncidentEdge(v int32, fn func(e int32)) {
	for _, s := range h.vIncident[v] {
		fn(s.edge)
	}
}

// Degree returns the number of hyperedges currently incident to v.
func (h *Hypergraph) Degree(v int32) int { return len(h.vIncident[v]) }

// ConnectivitySet returns the distinct blocks touched by e's active pins
// (λ(e) is len of the result). Used by the km1 objective.
func (h *Hypergraph) ConnectivitySet(e int32) []int32 {
	var blocks []int32
	for b := 0; b < h.k; b++ {
		if h.ePinCount[e][b] > 0 {
			blocks = append(blocks, int32(b))
		}
	}
	return blocks
}

// Connectivity returns λ(e), the number of distinct blocks touched by e.
func (h *Hypergraph) Connectivity(e int32) int {
	count := 0
	for b := 0; b < h.k; b++ {
		if h.ePinCount[e][b] > 0 {
			count++
		}
	}
	return count
}

// IsCut reports whether e has pins in more than one block (λ(e) > 1).
func (h *Hypergraph) IsCut(e int32) bool { return h.Connectivity(e) > 1 }
