package flow

import "github.com/partitionlab/gohypart/hgraph"

// sourceReachable returns the set of network nodes reachable from the
// source along edges with positive residual capacity in g's current
// (post max-flow) state — the source side of every minimum cut
// realising that flow value.
func sourceReachable(g *Network) []bool {
	n := int(g.N())
	reach := make([]bool, n)
	reach[g.source] = true
	queue := []int32{g.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		g.ForEachEdge(u, func(_ int32, e halfEdge) {
			if !reach[e.to] && e.residual() > 0 {
				reach[e.to] = true
				queue = append(queue, e.to)
			}
		})
	}
	return reach
}

// MostBalancedCut starts from the source-side minimum cut (source-
// reachable vertices go to b0, the rest to b1) and, while either block
// exceeds maxBlockWeight, reverts proposed moves to the vertex's current
// block, farthest from the original cut frontier (highest BFS distance)
// first. Other minimum cuts are not examined, and once a move has been
// reverted the result need not be a minimum cut. Returns, for every
// reassignable vertex, its proposed block.
func (sp *Subproblem) MostBalancedCut(h *hgraph.Hypergraph, maxBlockWeight int64) map[int32]int32 {
	reach := sourceReachable(sp.Net)

	proposed := make(map[int32]int32, len(sp.hgVertex))
	var candidates []int32 // vertices currently source-reachable but assigned b1, or vice versa
	for node, k := range sp.kind {
		if k != nodeVertex {
			continue
		}
		v := sp.hgVertex[node]
		target := sp.b1
		if reach[node] {
			target = sp.b0
		}
		proposed[v] = target
		if target != h.Part(v) {
			candidates = append(candidates, v)
		}
	}

	w0, w1 := h.BlockWeight(sp.b0), h.BlockWeight(sp.b1)
	for _, v := range candidates {
		from := h.Part(v)
		w := h.VertexWeight(v)
		if from == sp.b0 {
			w0 -= w
			w1 += w
		} else {
			w1 -= w
			w0 += w
		}
	}

	// Undo reassignments, farthest from the cut frontier first, until
	// both blocks respect the feasibility bound, so the moves kept are
	// those closest to the original cut (lower BFS distance).
	sortByDistanceDesc(candidates, sp.dist)
	for i := 0; i < len(candidates) && (w0 > maxBlockWeight || w1 > maxBlockWeight); i++ {
		v := candidates[i]
		from := h.Part(v)
		to := proposed[v]
		if to == from {
			continue
		}
		w := h.VertexWeight(v)
		// Revert v to its original block.
		if from == sp.b0 {
			w0 += w
			w1 -= w
		} else {
			w1 += w
			w0 -= w
		}
		proposed[v] = from
	}

	return proposed
}

// sortByDistanceDesc orders vertices by decreasing BFS distance from
// the cut frontier (farthest first), a simple insertion sort since
// subproblem vertex counts are small by construction (bounded by
// α·W(bi) per side).
func sortByDistanceDesc(vs []int32, dist map[int32]int) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && dist[vs[j-1]] < dist[vs[j]]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}
