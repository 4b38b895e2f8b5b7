package hgbuilder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree)
// is smaller than the minimum a constructor requires.
var ErrTooFewVertices = errors.New("hgbuilder: parameter too small")

// ErrInvalidProbability indicates a probability parameter lies outside
// the closed interval [0,1].
var ErrInvalidProbability = errors.New("hgbuilder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a
// non-nil RNG (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("hgbuilder: rng is required")

// ErrConstructFailed indicates a constructor exhausted its permitted
// strategies or attempts without producing a valid hypergraph.
var ErrConstructFailed = errors.New("hgbuilder: construction failed")

func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
