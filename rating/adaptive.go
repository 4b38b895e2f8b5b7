package rating

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// AdaptiveStopper implements the "adaptive" FM stopping rule: keep a
// running sample of recent per-move gains and stop once the number of
// consecutive fruitless moves exceeds a
// variance-scaled threshold, so a refiner run on a noisy (high
// variance) gain sequence is given more rope than one on a sequence
// that has clearly flattened out. AdaptiveStopper is stateful and not
// safe for concurrent use; the FM refiner owns one instance per run.
type AdaptiveStopper struct {
	alpha  float64
	values []float64
}

// NewAdaptiveStopper returns a stopper parameterised by alpha.
// alpha=+Inf disables the criterion entirely (ShouldStop always
// reports false), leaving the "simple" fruitless-move counter as
// the only stopping condition.
func NewAdaptiveStopper(alpha float64) *AdaptiveStopper {
	return &AdaptiveStopper{alpha: alpha}
}

// Observe records the gain of the move just performed.
func (s *AdaptiveStopper) Observe(gain float64) {
	s.values = append(s.values, gain)
}

// ShouldStop reports whether the refiner should stop after
// fruitlessMoves consecutive non-improving moves, given the gain
// history observed so far.
func (s *AdaptiveStopper) ShouldStop(fruitlessMoves int) bool {
	if math.IsInf(s.alpha, 1) {
		return false
	}
	if len(s.values) < 2 {
		return false
	}
	_, variance := stat.MeanVariance(s.values, nil)
	threshold := s.alpha * math.Sqrt(variance)
	return float64(fruitlessMoves) > threshold
}

// Reset clears the observed gain history, for reuse across FM runs on
// different uncoarsening levels.
func (s *AdaptiveStopper) Reset() {
	s.values = s.values[:0]
}
