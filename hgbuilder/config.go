package hgbuilder

import "math/rand"

// builderConfig aggregates the knobs shared by every Constructor. It is
// resolved once per BuildHypergraph call and passed by value, immutable
// for the duration of the build.
type builderConfig struct {
	// rng drives stochastic constructors (RandomSparse, Bipartite's
	// fanout sampling); nil means "no randomness requested".
	rng *rand.Rand

	// edgeWeightFn assigns ω(e) to a newly added hyperedge of the given
	// arity; nil defaults to a constant weight of 1.
	edgeWeightFn func(rng *rand.Rand, arity int) int64

	// vertexWeightFn assigns c(v) for vertex index v; nil defaults to a
	// constant weight of 1 for every vertex.
	vertexWeightFn func(v int) int64
}

const defaultWeight = int64(1)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		edgeWeightFn:   func(*rand.Rand, int) int64 { return defaultWeight },
		vertexWeightFn: func(int) int64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
