package hgbuilder

import "fmt"

// impl_bipartite.go - Bipartite(nDrivers, nSinks, fanout): a driver/
// sink netlist generator, the sparser, more realistic VLSI pattern
// where each driver connects to a bounded-size random subset of sinks
// rather than wiring every driver to every sink.
//
// Contract:
//   - nDrivers >= 1, nSinks >= 1, 1 <= fanout <= nSinks (else
//     ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Driver d occupies vertex index d; sink s occupies vertex index
//     nDrivers+s.
//   - Emits one (1+fanout)-pin hyperedge per driver: the driver plus a
//     uniformly sampled, duplicate-free subset of fanout sinks.
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, arity) per edge.

const methodBipartite = "Bipartite"

// Bipartite returns a Constructor building the driver/sink topology
// described above. The caller must size the hypergraph to exactly
// nDrivers+nSinks vertices.
func Bipartite(nDrivers, nSinks, fanout int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if nDrivers < 1 || nSinks < 1 {
			return fmt.Errorf("%s: nDrivers=%d, nSinks=%d (each must be >= 1): %w", methodBipartite, nDrivers, nSinks, ErrTooFewVertices)
		}
		if fanout < 1 || fanout > nSinks {
			return fmt.Errorf("%s: fanout=%d (need 1 <= fanout <= nSinks=%d): %w", methodBipartite, fanout, nSinks, ErrTooFewVertices)
		}
		if n := nDrivers + nSinks; n != s.n {
			return builderErrorf(methodBipartite, "nDrivers+nSinks=%d does not match hypergraph size %d", n, s.n)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodBipartite, ErrNeedRandSource)
		}

		for d := 0; d < nDrivers; d++ {
			perm := cfg.rng.Perm(nSinks)
			pins := make([]int32, 0, fanout+1)
			pins = append(pins, int32(d))
			for i := 0; i < fanout; i++ {
				pins = append(pins, int32(nDrivers+perm[i]))
			}
			w := cfg.edgeWeightFn(cfg.rng, len(pins))
			if err := s.addEdge(methodBipartite, pins, w); err != nil {
				return err
			}
		}
		return nil
	}
}
