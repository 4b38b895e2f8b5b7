package hgraph

// Clone returns a deep copy of h, including the contraction stack. Used
// by the initial partitioner (component F) to run several pool trials
// from the same coarsest hypergraph without one trial's part
// assignments leaking into another's.
//
// Complexity: O(n + Σ|Pins[e]|).
func (h *Hypergraph) Clone() *Hypergraph {
	c := &Hypergraph{
		k:         h.k,
		cmaxnet:   h.cmaxnet,
		markEpoch: h.markEpoch,
	}
	c.vWeight = append([]int64(nil), h.vWeight...)
	c.vPart = append([]int32(nil), h.vPart...)
	c.vCommunity = append([]int32(nil), h.vCommunity...)
	c.vFixed = append([]int32(nil), h.vFixed...)
	c.vActive = append([]bool(nil), h.vActive...)
	c.vIncident = make([][]incidentSlot, len(h.vIncident))
	for v, inc := range h.vIncident {
		c.vIncident[v] = append([]incidentSlot(nil), inc...)
	}

	c.eWeight = append([]int64(nil), h.eWeight...)
	c.ePins = make([][]pinSlot, len(h.ePins))
	for e, p := range h.ePins {
		c.ePins[e] = append([]pinSlot(nil), p...)
	}
	if h.ePinCount != nil {
		c.ePinCount = make([][]int32, len(h.ePinCount))
		for e, cc := range h.ePinCount {
			c.ePinCount[e] = append([]int32(nil), cc...)
		}
	}
	c.blockWeight = append([]int64(nil), h.blockWeight...)
	c.edgeMark = append([]int32(nil), h.edgeMark...)

	c.stack = make([]ContractionRecord, len(h.stack))
	for i, rec := range h.stack {
		c.stack[i] = rec
		c.stack[i].deltas = append([]contractionDelta(nil), rec.deltas...)
	}
	return c
}

// ResetParts clears every vertex's part assignment back to unassigned
// (⊥) and zeroes pinCountInPart / block weights, without touching the
// contraction stack. Used between initial-partitioner pool trials.
func (h *Hypergraph) ResetParts() {
	for v := range h.vPart {
		h.vPart[v] = -1
	}
	for b := range h.blockWeight {
		h.blockWeight[b] = 0
	}
	for e := range h.ePinCount {
		for b := range h.ePinCount[e] {
			h.ePinCount[e][b] = 0
		}
	}
}
