package hgbuilder

import "fmt"

// impl_complete.go - Complete(n, arity): the complete r-uniform
// hypergraph — every r-subset of vertices forms a hyperedge, with K_n
// (the complete simple graph) as the r=2 case.
//
// Contract:
//   - n >= arity >= 2 (else ErrTooFewVertices).
//   - Emits one hyperedge per r-subset of {0,...,n-1}, enumerated in
//     lexicographic order for a stable, deterministic edge order.
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, arity) per edge.
//
// Complexity: O(n choose arity) hyperedges; intended for small n in
// tests and benchmarks.

const methodComplete = "Complete"

// Complete returns a Constructor building the complete r-uniform
// hypergraph on n vertices, where r = arity.
func Complete(n, arity int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if arity < 2 || n < arity {
			return fmt.Errorf("%s: n=%d, arity=%d (need n >= arity >= 2): %w", methodComplete, n, arity, ErrTooFewVertices)
		}
		if n != s.n {
			return builderErrorf(methodComplete, "n=%d does not match hypergraph size %d", n, s.n)
		}

		combo := make([]int32, arity)
		for i := range combo {
			combo[i] = int32(i)
		}
		for {
			pins := make([]int32, arity)
			copy(pins, combo)
			w := cfg.edgeWeightFn(cfg.rng, arity)
			if err := s.addEdge(methodComplete, pins, w); err != nil {
				return err
			}

			// Advance combo to the next lexicographic r-subset; stop
			// once the leftmost index can no longer be incremented.
			i := arity - 1
			for i >= 0 && int(combo[i]) == n-arity+i {
				i--
			}
			if i < 0 {
				break
			}
			combo[i]++
			for j := i + 1; j < arity; j++ {
				combo[j] = combo[j-1] + 1
			}
		}
		return nil
	}
}
