package hgbuilder

import "fmt"

// impl_star.go - Star(n): a single hub vertex (0) incident to every
// leaf via n-1 two-pin hub-leaf edges, plus an additional all-pins net
// that models the common VLSI "clock tree" pattern: one driver net
// touching every sink, with the pairwise hub-leaf edges kept alongside
// it for finer-grained cut accounting.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; vertices 1..n-1 are leaves.
//   - Emits n-1 two-pin hub-leaf hyperedges in ascending leaf order,
//     then one n-pin hyperedge spanning the whole star.
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, arity) per edge.

const methodStar = "Star"

// Star returns a Constructor building the star topology described
// above on n vertices.
func Star(n int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d (need n >= 2): %w", methodStar, n, ErrTooFewVertices)
		}
		if n != s.n {
			return builderErrorf(methodStar, "n=%d does not match hypergraph size %d", n, s.n)
		}

		for leaf := 1; leaf < n; leaf++ {
			w := cfg.edgeWeightFn(cfg.rng, 2)
			if err := s.addEdge(methodStar, []int32{0, int32(leaf)}, w); err != nil {
				return err
			}
		}

		all := make([]int32, n)
		for v := 0; v < n; v++ {
			all[v] = int32(v)
		}
		w := cfg.edgeWeightFn(cfg.rng, n)
		return s.addEdge(methodStar, all, w)
	}
}
