package hgraph

import "fmt"

// ChangeNodePart moves v from block `from` to block `to`, updating
// part(v), W(from)/W(to), and pinCountInPart for every incident edge
//. Fails loudly if v is fixed to a different block.
//
// Complexity: O(d(v)), the number of hyperedges incident to v.
func (h *Hypergraph) ChangeNodePart(v int32, from, to int32) error {
	if !h.vActive[v] {
		return fmt.Errorf("hgraph.ChangeNodePart: %w", ErrVertexInactive)
	}
	if h.vPart[v] != from {
		return internalf("part-consistency", "vertex %d expected in block %d, found %d", v, from, h.vPart[v])
	}
	if h.vFixed[v] != unfixed && h.vFixed[v] != to {
		return fmt.Errorf("hgraph.ChangeNodePart: %w", ErrFixedVertex)
	}
	if to < 0 || int(to) >= h.k {
		return fmt.Errorf("hgraph.ChangeNodePart: %w", ErrBlockRange)
	}

	w := h.vWeight[v]
	if from >= 0 {
		h.blockWeight[from] -= w
	}
	h.blockWeight[to] += w
	h.vPart[v] = to

	for _, s := range h.vIncident[v] {
		counts := h.ePinCount[s.edge]
		if from >= 0 {
			counts[from]--
		}
		counts[to]++
	}
	return nil
}

// AssignInitialPart sets part(v) for a vertex that was previously
// unassigned (⊥), used by the initial partitioner (component F) which
// never goes through a "from" block. Equivalent to
// ChangeNodePart(v, -1, to) but does not require h.vPart[v]==-1 checked
// against an existing ChangeNodePart call history.
func (h *Hypergraph) AssignInitialPart(v int32, to int32) error {
	if h.vPart[v] != -1 {
		return internalf("initial-assignment", "vertex %d already assigned to block %d", v, h.vPart[v])
	}
	return h.ChangeNodePart(v, -1, to)
}

// RecomputePinCounts recomputes pinCountInPart for every edge from
// scratch, used by property tests and by
// debug assertions guarding the incremental maintenance above.
//
// Complexity: O(n + Σ|Pins[e]|).
func (h *Hypergraph) RecomputePinCounts() [][]int32 {
	fresh := make([][]int32, len(h.ePins))
	for e := range h.ePins {
		fresh[e] = make([]int32, h.k)
		for _, s := range h.ePins[e] {
			b := h.vPart[s.vertex]
			if b >= 0 {
				fresh[e][b]++
			}
		}
	}
	return fresh
}

// RecomputeBlockWeights recomputes W(b) for every block from scratch.
func (h *Hypergraph) RecomputeBlockWeights() []int64 {
	fresh := make([]int64, h.k)
	for v := range h.vWeight {
		if !h.vActive[v] {
			continue
		}
		b := h.vPart[v]
		if b >= 0 {
			fresh[b] += h.vWeight[v]
		}
	}
	return fresh
}
