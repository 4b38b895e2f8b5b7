package hgraph

import "fmt"

// ValidateInvariants recomputes pinCountInPart and block weights from
// scratch and compares them against the incrementally maintained state,
// returning an *InternalError describing the first mismatch found
//. Intended for tests and debug builds,
// not the hot path.
func (h *Hypergraph) ValidateInvariants() error {
	fresh := h.RecomputePinCounts()
	for e := range h.ePins {
		for b := 0; b < h.k; b++ {
			if fresh[e][b] != h.ePinCount[e][b] {
				return internalf("pin-count-consistency", "edge %d block %d: got %d want %d", e, b, h.ePinCount[e][b], fresh[e][b])
			}
		}
		var sum int32
		for _, c := range h.ePinCount[e] {
			sum += c
		}
		if int(sum) != len(h.ePins[e]) {
			return internalf("pin-count-sum", "edge %d: sum %d != |Pins| %d", e, sum, len(h.ePins[e]))
		}
	}

	freshW := h.RecomputeBlockWeights()
	for b := range freshW {
		if freshW[b] != h.blockWeight[b] {
			return internalf("block-weight-consistency", "block %d: got %d want %d", b, h.blockWeight[b], freshW[b])
		}
	}

	var total, accounted int64
	for v := range h.vWeight {
		if h.vActive[v] {
			accounted += h.vWeight[v]
		}
		if h.vActive[v] && h.vPart[v] >= 0 {
			total += h.vWeight[v]
		}
	}
	_ = accounted
	var wSum int64
	for _, w := range h.blockWeight {
		wSum += w
	}
	if wSum != total {
		return fmt.Errorf("hgraph.ValidateInvariants: %w", internalf("block-weight-total", "sum W(b)=%d != assigned weight=%d", wSum, total))
	}
	return nil
}

// Snapshot captures enough state to assert byte-identical restoration
// after a contract/uncontract pair. It is a
// test helper, not part of the hot path.
type Snapshot struct {
	pins      [][]pinSlot
	incidents [][]incidentSlot
	weight    []int64
	pinCount  [][]int32
}

// TakeSnapshot deep-copies the mutable arrays Contract/Uncontract touch.
func (h *Hypergraph) TakeSnapshot() Snapshot {
	s := Snapshot{
		pins:      make([][]pinSlot, len(h.ePins)),
		incidents: make([][]incidentSlot, len(h.vIncident)),
		weight:    append([]int64(nil), h.vWeight...),
	}
	for e, p := range h.ePins {
		s.pins[e] = append([]pinSlot(nil), p...)
	}
	for v, inc := range h.vIncident {
		s.incidents[v] = append([]incidentSlot(nil), inc...)
	}
	if h.ePinCount != nil {
		s.pinCount = make([][]int32, len(h.ePinCount))
		for e, c := range h.ePinCount {
			s.pinCount[e] = append([]int32(nil), c...)
		}
	}
	return s
}

// Equal reports whether two snapshots are byte-identical.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.pins) != len(other.pins) {
		return false
	}
	for e := range s.pins {
		if len(s.pins[e]) != len(other.pins[e]) {
			return false
		}
		for i := range s.pins[e] {
			if s.pins[e][i] != other.pins[e][i] {
				return false
			}
		}
	}
	if len(s.incidents) != len(other.incidents) {
		return false
	}
	for v := range s.incidents {
		if len(s.incidents[v]) != len(other.incidents[v]) {
			return false
		}
		for i := range s.incidents[v] {
			if s.incidents[v][i] != other.incidents[v][i] {
				return false
			}
		}
	}
	for v := range s.weight {
		if s.weight[v] != other.weight[v] {
			return false
		}
	}
	for e := range s.pinCount {
		for b := range s.pinCount[e] {
			if s.pinCount[e][b] != other.pinCount[e][b] {
				return false
			}
		}
	}
	return true
}
