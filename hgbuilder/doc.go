// Package hgbuilder provides deterministic synthetic hypergraph
// generators for tests, examples, and benchmarks. It follows a
// functional-options builder style: each topology factory returns a
// Constructor closure that appends pins to an in-progress pin list
// rather than mutating a live hypergraph directly, since
// hgraph.Hypergraph is built once from a complete pin/weight set via
// hgraph.New.
package hgbuilder
