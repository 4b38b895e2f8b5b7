package fm

import "github.com/partitionlab/gohypart/hgraph"

// ComputeGain returns the change in the partition objective if v were
// moved from its current block to to (positive means improvement),
// summed over v's incident hyperedges.
//
// For km1 (and for cut at k=2, where cut≡km1), moving v only changes
// an edge's cost when its pin count in the source block crosses 1→0
// (the edge stops touching that block, cost -1 block) or its pin
// count in the destination block crosses 0→1 (the edge starts
// touching it, cost +1 block); the size-2/size-3 special cases fall
// out of this formula without separate code paths.
//
// For cut at k>2 this pin-count-transition sum is wrong: an edge's
// cut cost is binary (w(e) if its connectivity λ(e) exceeds 1, else
// 0), so a pin-count transition only changes the cost when it moves
// λ(e) across the 1/2 boundary — not on every transition. A hyperedge
// touching 3 blocks that loses one of them still costs w(e) either
// way. The cut branch below tracks λ(e) before and after the move and
// only credits/penalizes the edges whose cut status actually flips.
func ComputeGain(h *hgraph.Hypergraph, v int32, to int32, objective hgraph.Objective) int64 {
	from := h.Part(v)
	var gain int64
	h.ForEachIncidentEdge(v, func(e int32) {
		if h.IsLargeEdge(e) {
			return
		}
		w := h.EdgeWeight(e)
		removed := from >= 0 && h.PinCountInPart(e, from) == 1
		added := h.PinCountInPart(e, to) == 0

		if objective != hgraph.Cut {
			if removed {
				gain += w
			}
			if added {
				gain -= w
			}
			return
		}

		before := h.Connectivity(e)
		after := before
		if removed {
			after--
		}
		if added {
			after++
		}
		cutBefore := before > 1
		cutAfter := after > 1
		switch {
		case cutBefore && !cutAfter:
			gain += w
		case !cutBefore && cutAfter:
			gain -= w
		}
	})
	return gain
}

// IsBorder reports whether v is incident to at least one cut
// hyperedge, i.e. is a candidate for the gain PQ at all.
func IsBorder(h *hgraph.Hypergraph, v int32) bool {
	border := false
	h.ForEachIncidentEdge(v, func(e int32) {
		if border || h.IsLargeEdge(e) {
			return
		}
		if h.IsCut(e) {
			border = true
		}
	})
	return border
}

// targetBlocks lists the blocks a move loop should consider for v under
// the refiner's mode.
func targetBlocks(h *hgraph.Hypergraph, v int32, mode Mode, pair [2]int32) []int32 {
	from := h.Part(v)
	if mode == TwoWay {
		other := pair[0]
		if from == pair[0] {
			other = pair[1]
		}
		if from != pair[0] && from != pair[1] {
			return nil
		}
		return []int32{other}
	}
	targets := make([]int32, 0, h.K()-1)
	for b := int32(0); b < int32(h.K()); b++ {
		if b != from {
			targets = append(targets, b)
		}
	}
	return targets
}
