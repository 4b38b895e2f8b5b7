package hgbuilder

import "fmt"

// impl_chain.go - Path(n, window) and Cycle(n, window): sliding-window
// hyperedges over a vertex sequence, spanning window consecutive
// vertices each (window=2 degenerates to pairwise edges between
// consecutive vertices).
//
// Contract (both):
//   - n >= window >= 2 (else ErrTooFewVertices).
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, window) per edge.
//
// Path emits one hyperedge per window of window consecutive vertices
// starting at i=0..n-window, no wraparound. Cycle additionally emits
// the window-1 wrapping hyperedges that Path omits, closing the ring.

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	minWindow   = 2
)

// Path returns a Constructor building the sliding-window chain
// described above.
func Path(n, window int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if window < minWindow || n < window {
			return fmt.Errorf("%s: n=%d, window=%d (need n >= window >= %d): %w", methodPath, n, window, minWindow, ErrTooFewVertices)
		}
		if n != s.n {
			return builderErrorf(methodPath, "n=%d does not match hypergraph size %d", n, s.n)
		}
		return emitSlidingWindows(s, methodPath, cfg, n, window, false)
	}
}

// Cycle returns a Constructor building Path's sliding windows plus
// the wraparound windows that close the ring.
func Cycle(n, window int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if window < minWindow || n < window {
			return fmt.Errorf("%s: n=%d, window=%d (need n >= window >= %d): %w", methodCycle, n, window, minWindow, ErrTooFewVertices)
		}
		if n != s.n {
			return builderErrorf(methodCycle, "n=%d does not match hypergraph size %d", n, s.n)
		}
		return emitSlidingWindows(s, methodCycle, cfg, n, window, true)
	}
}

func emitSlidingWindows(s *state, method string, cfg builderConfig, n, window int, wrap bool) error {
	last := n - window
	if wrap {
		last = n - 1
	}
	for start := 0; start <= last; start++ {
		pins := make([]int32, window)
		for j := 0; j < window; j++ {
			pins[j] = int32((start + j) % n)
		}
		w := cfg.edgeWeightFn(cfg.rng, window)
		if err := s.addEdge(method, pins, w); err != nil {
			return err
		}
	}
	return nil
}
