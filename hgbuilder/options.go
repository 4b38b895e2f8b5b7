package hgbuilder

import "math/rand"

// BuilderOption customizes a BuildHypergraph call by mutating a
// builderConfig before any Constructor runs.
type BuilderOption func(*builderConfig)

// WithRand supplies an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("hgbuilder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new deterministic *rand.Rand from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeWeightFn overrides the per-hyperedge weight generator. The
// function receives the (possibly nil) RNG and the edge's pin count and
// must be pure w.r.t. input RNG state to preserve determinism. Panics
// on nil.
func WithEdgeWeightFn(fn func(rng *rand.Rand, arity int) int64) BuilderOption {
	if fn == nil {
		panic("hgbuilder: WithEdgeWeightFn(nil)")
	}
	return func(c *builderConfig) { c.edgeWeightFn = fn }
}

// WithVertexWeightFn overrides the per-vertex weight generator. Panics
// on nil.
func WithVertexWeightFn(fn func(v int) int64) BuilderOption {
	if fn == nil {
		panic("hgbuilder: WithVertexWeightFn(nil)")
	}
	return func(c *builderConfig) { c.vertexWeightFn = fn }
}
