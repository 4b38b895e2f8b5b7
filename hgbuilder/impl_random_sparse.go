package hgbuilder

import "fmt"

// impl_random_sparse.go - RandomSparse(n, m, minArity, maxArity, p):
// an Erdos-Renyi-style random hypergraph, sampling m candidate
// hyperedges with arity drawn uniformly from [minArity,maxArity] and
// admitting each independently with probability p (an independent
// Bernoulli trial per candidate edge).
//
// Contract:
//   - n >= 2, m >= 1, 2 <= minArity <= maxArity <= n (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Candidate hyperedges are sampled in trial order 0..m-1; a trial's
//     pins are a uniform random subset of {0,...,n-1} of the trial's
//     arity, admitted into the result with probability p.
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, arity) per admitted edge.
//
// Determinism: stable trial order for a fixed seed; outcomes depend
// only on the RNG's draw sequence, not on map iteration order.

const (
	methodRandomSparse = "RandomSparse"
	minSparseVertices  = 2
)

// RandomSparse returns a Constructor sampling m candidate hyperedges
// as described above.
func RandomSparse(n, m, minArity, maxArity int, p float64) Constructor {
	return func(s *state, cfg builderConfig) error {
		if n < minSparseVertices || m < 1 {
			return fmt.Errorf("%s: n=%d, m=%d (need n >= %d, m >= 1): %w", methodRandomSparse, n, m, minSparseVertices, ErrTooFewVertices)
		}
		if minArity < 2 || minArity > maxArity || maxArity > n {
			return fmt.Errorf("%s: minArity=%d, maxArity=%d, n=%d (need 2 <= minArity <= maxArity <= n): %w",
				methodRandomSparse, minArity, maxArity, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if n != s.n {
			return builderErrorf(methodRandomSparse, "n=%d does not match hypergraph size %d", n, s.n)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		arityRange := maxArity - minArity + 1
		for trial := 0; trial < m; trial++ {
			if cfg.rng.Float64() > p {
				continue
			}
			arity := minArity
			if arityRange > 1 {
				arity += cfg.rng.Intn(arityRange)
			}
			perm := cfg.rng.Perm(n)
			pins := make([]int32, arity)
			for i := 0; i < arity; i++ {
				pins[i] = int32(perm[i])
			}
			w := cfg.edgeWeightFn(cfg.rng, arity)
			if err := s.addEdge(methodRandomSparse, pins, w); err != nil {
				return err
			}
		}
		return nil
	}
}
