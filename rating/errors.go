package rating

import "errors"

var (
	// ErrNoEligiblePair names the state where no active vertex has any
	// admissible contraction partner left. Coarsener.Run does not return
	// it: a pass that contracts nothing simply ends the coarsening loop.
	ErrNoEligiblePair = errors.New("rating: no eligible contraction pair")
	// ErrInvalidConfig is returned when a Config's ratios or enum fields
	// are out of range.
	ErrInvalidConfig = errors.New("rating: invalid configuration")
)
