// Package rating implements the coarsening side of the pipeline
//: rating functions that score how good it would be to
// contract two vertices, the policies layered on top of a raw rating
// (heavy-node penalty, acceptance, community, fixed-vertex), and the
// ML-style coarsener that drives repeated hgraph.Contract calls down to
// the initial-partitioning threshold.
//
// AdaptiveStopper, the running-variance stopping criterion over a
// stream of gain values, also lives here rather than in fm; the FM
// refiner is its only user.
package rating
