package hgraph

import "fmt"

// Contract merges v into u: c(u) += c(v), every hyperedge incident to v
// is either disabled (if u is already a pin) or rewired to u, and v is
// deactivated. Preconditions: u != v, both active; the caller (the
// coarsening rating/acceptance policy) is responsible for not
// contracting a fixed vertex across a block boundary.
//
// Complexity: O(d(u) + d(v)) amortised.
func (h *Hypergraph) Contract(u, v int32) error {
	if u == v {
		return fmt.Errorf("hgraph.Contract: %w", ErrSameVertex)
	}
	if !h.vActive[u] || !h.vActive[v] {
		return fmt.Errorf("hgraph.Contract: %w", ErrVertexInactive)
	}

	rec := ContractionRecord{U: u, V: v, PreWeightU: h.vWeight[u]}

	if h.k > 0 && (h.vPart[u] >= 0 || h.vPart[v] >= 0) {
		rec.hadParts = true
		rec.partU = h.vPart[u]
		rec.partV = h.vPart[v]
		if rec.partV >= 0 {
			h.blockWeight[rec.partV] -= h.vWeight[v]
		}
		if rec.partU >= 0 {
			h.blockWeight[rec.partU] += h.vWeight[v]
		}
	}

	h.vWeight[u] += h.vWeight[v]

	// Mark every edge currently incident to u so the loop below can test
	// "u in Pins[e]" in O(1) per edge.
	h.markEpoch++
	if len(h.edgeMark) < len(h.ePins) {
		grown := make([]int32, len(h.ePins))
		copy(grown, h.edgeMark)
		h.edgeMark = grown
	}
	epoch := h.markEpoch
	for _, s := range h.vIncident[u] {
		h.edgeMark[s.edge] = epoch
	}

	vInc := h.vIncident[v]
	deltas := make([]contractionDelta, 0, len(vInc))
	for vSlotIdx, s := range vInc {
		e := s.edge
		slot := s.backSlot

		var decBlock, incBlock int32 = -1, -1
		if h.k > 0 {
			if rec.partV >= 0 {
				decBlock = rec.partV
			}
		}

		if h.edgeMark[e] == epoch {
			// u already a pin of e: disable v's slot.
			if decBlock >= 0 {
				h.ePinCount[e][decBlock]--
			}
			h.removePinSlot(e, slot)
			deltas = append(deltas, contractionDelta{edge: e, kind: kindDisable, slot: slot, decBlock: decBlock, incBlock: -1})
		} else {
			// u not a pin of e: rewire v's slot to u.
			if h.k > 0 && rec.partU >= 0 {
				incBlock = rec.partU
			}
			if decBlock >= 0 {
				h.ePinCount[e][decBlock]--
			}
			if incBlock >= 0 {
				h.ePinCount[e][incBlock]++
			}
			newBackSlot := int32(len(h.vIncident[u]))
			h.vIncident[u] = append(h.vIncident[u], incidentSlot{edge: e, backSlot: slot})
			h.ePins[e][slot] = pinSlot{vertex: u, backSlot: newBackSlot}
			deltas = append(deltas, contractionDelta{edge: e, kind: kindRewire, slot: slot, vIncidentIdx: int32(vSlotIdx), decBlock: decBlock, incBlock: incBlock})
		}
	}
	rec.deltas = deltas

	h.vActive[v] = false
	h.stack = append(h.stack, rec)
	return nil
}

// removePinSlot swap-removes the pin at position slot in e's active pin
// array, fixing up the back-pointer of whichever pin moves into slot.
func (h *Hypergraph) removePinSlot(e int32, slot int32) {
	pins := h.ePins[e]
	last := int32(len(pins)) - 1
	if slot != last {
		pins[slot], pins[last] = pins[last], pins[slot]
		moved := pins[slot]
		h.vIncident[moved.vertex][moved.backSlot].backSlot = slot
	}
	h.ePins[e] = pins[:last]
}

// restorePinSlot is the exact inverse of removePinSlot: it regrows e's
// pin array by one and undoes the swap performed at slot.
func (h *Hypergraph) restorePinSlot(e int32, slot int32) {
	pins := h.ePins[e]
	newLen := int32(len(pins)) + 1
	pins = pins[:newLen]
	last := newLen - 1
	if slot != last {
		pins[slot], pins[last] = pins[last], pins[slot]
		moved := pins[last]
		h.vIncident[moved.vertex][moved.backSlot].backSlot = last
	}
	h.ePins[e] = pins
}

// Uncontract reverses the most recent pending Contract, restoring
// Pins, Incidents, W, and pinCountInPart byte-identically. Must be
// called in strict LIFO order; no support for arbitrary undo.
func (h *Hypergraph) Uncontract() (u, v int32, err error) {
	if len(h.stack) == 0 {
		return 0, 0, fmt.Errorf("hgraph.Uncontract: %w", ErrEmptyStack)
	}
	rec := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]

	for i := len(rec.deltas) - 1; i >= 0; i-- {
		d := rec.deltas[i]
		switch d.kind {
		case kindDisable:
			h.restorePinSlot(d.edge, d.slot)
			if d.decBlock >= 0 {
				h.ePinCount[d.edge][d.decBlock]++
			}
		case kindRewire:
			uEntry := h.ePins[d.edge][d.slot]
			uInc := h.vIncident[uEntry.vertex]
			last := len(uInc) - 1
			h.vIncident[uEntry.vertex] = uInc[:last]
			h.ePins[d.edge][d.slot] = pinSlot{vertex: rec.V, backSlot: d.vIncidentIdx}
			if d.decBlock >= 0 {
				h.ePinCount[d.edge][d.decBlock]++
			}
			if d.incBlock >= 0 {
				h.ePinCount[d.edge][d.incBlock]--
			}
		}
	}

	if rec.hadParts {
		if rec.partV >= 0 {
			h.blockWeight[rec.partV] += h.vWeight[rec.V]
		}
		if rec.partU >= 0 {
			h.blockWeight[rec.partU] -= h.vWeight[rec.V]
		}
	}

	h.vWeight[rec.U] = rec.PreWeightU
	h.vActive[rec.V] = true
	return rec.U, rec.V, nil
}

// PendingContractions returns the number of contractions not yet
// reversed, i.e. the height of the uncoarsening stack still to unwind.
func (h *Hypergraph) PendingContractions() int { return len(h.stack) }
