// Package initial implements the initial-partitioning pool: a small
// set of heuristics (random, BFS growing, greedy hyperedge, label
// propagation) run for a configurable number of trials at the coarsest
// level, keeping the best feasible result. DirectKWay produces a
// single k-way partition directly; RecursiveBisection builds it by
// repeated bisection. Fixed vertices are assigned before any heuristic
// runs and are treated as immovable by every heuristic.
//
// The heuristics themselves are grounded on rating's visit-order and
// tie-breaking idioms (internal/rng-derived substreams, weighted-share
// neighbour scoring mirroring rating.HeavyEdgeRating's
// ω(e)/(|Pins[e]|-1) term).
//
// When two pool trials land on the same (feasible, objective, imbalance)
// triple, DirectKWay breaks the tie by projecting the candidate
// partition onto a gonum.org/v1/gonum/graph/simple clique-expansion of
// the hypergraph and comparing Newman modularity via
// gonum.org/v1/gonum/graph/community.Q (modularity.go), preferring the
// trial whose blocks more closely follow the hypergraph's natural
// community structure.
package initial
