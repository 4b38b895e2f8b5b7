// Package flow implements the flow/min-cut refiner: build a bounded
// subproblem around a cut block pair, run a pluggable
// maximum-flow solver over it, extract the most-balanced minimum cut,
// and decide via an adaptive-α doubling loop whether to commit or roll
// back. Block-pair scheduling ("quotient graph") and the three
// execution policies that gate when a level runs flow at all also live
// here.
//
// Solvers operate on the package's own Network type (a residual graph
// with paired forward/reverse edges), not on hgraph.Hypergraph directly —
// the subproblem extraction step (Build) is the only place hypergraph
// structure and flow-network structure meet.
package flow
