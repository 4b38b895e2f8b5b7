// Package hgraph is the hypergraph store at the bottom of the
// partitioning pipeline: pin/incidence arrays, contraction and
// uncontraction, part assignment, and per-edge pin counts per block.
//
//	Pins[e]      — the vertices e connects (its pins)
//	Incidents[v] — the hyperedges v is a pin of
//
// Storage is CSR-like: each vertex and each hyperedge owns a contiguous,
// mutable slice plus an active-size cursor, so Contract can disable a
// pin in O(1) amortised by swapping it into the inactive tail instead of
// shrinking a map. Uncontract reverses the exact same swaps in LIFO
// order, restoring byte-identical state.
//
// A single Hypergraph is built once per partitioning invocation and is
// not safe for concurrent use — the partitioning core is single
// threaded and synchronous by design, so, unlike a general-purpose
// concurrent graph store, no locking is needed here: one invocation
// owns one Hypergraph exclusively.
package hgraph
