package initial

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/partitionlab/gohypart/hgraph"
)

// cliqueExpansion projects h's currently active vertices onto a
// gonum graph.Weighted by clique-expanding every hyperedge: each pair
// of pins in a hyperedge e gets an edge weighted ω(e)/(|Pins[e]|-1),
// the same per-pair share rating.HeavyEdgeRating already uses to
// score a single contraction candidate (rating/rating.go), reused here
// to score an entire candidate partition's community structure.
func cliqueExpansion(h *hgraph.Hypergraph) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for v := int32(0); v < int32(h.N()); v++ {
		if h.IsActive(v) {
			g.AddNode(simple.Node(v))
		}
	}
	for e := int32(0); e < int32(h.M()); e++ {
		size := h.EdgeSize(e)
		if size < 2 {
			continue
		}
		share := float64(h.EdgeWeight(e)) / float64(size-1)
		var pins []int32
		h.ForEachPin(e, func(v int32) { pins = append(pins, v) })
		for i := 0; i < len(pins); i++ {
			for j := i + 1; j < len(pins); j++ {
				u, v := simple.Node(pins[i]), simple.Node(pins[j])
				if existing := g.WeightedEdge(u.ID(), v.ID()); existing != nil {
					g.SetWeightedEdge(simple.WeightedEdge{F: u, T: v, W: existing.Weight() + share})
				} else {
					g.SetWeightedEdge(simple.WeightedEdge{F: u, T: v, W: share})
				}
			}
		}
	}
	return g
}

// modularityScore computes Newman's modularity Q of label (a candidate
// k-way assignment over free, with fixed vertices already resolved in
// h) against h's clique-expansion. Used as a tie-breaker between pool
// trials that land on the same (objective, imbalance): a higher Q
// indicates a partition that more closely follows the hypergraph's
// natural community structure, a proxy DirectKWay's local heuristics
// don't otherwise consider.
func modularityScore(h *hgraph.Hypergraph, free []int32, label []int32, fixed []int32, k int) float64 {
	g := cliqueExpansion(h)

	communities := make([][]graph.Node, k)
	for i, v := range free {
		communities[label[i]] = append(communities[label[i]], simple.Node(v))
	}
	for _, v := range fixed {
		b := h.FixedBlock(v)
		communities[b] = append(communities[b], simple.Node(v))
	}

	nonEmpty := communities[:0]
	for _, c := range communities {
		if len(c) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if len(nonEmpty) == 0 {
		return 0
	}
	return community.Q(g, nonEmpty, 1)
}
