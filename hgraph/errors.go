package hgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for hypergraph construction and mutation.
var (
	// ErrEmptyHypergraph indicates a hypergraph with zero vertices.
	ErrEmptyHypergraph = errors.New("hgraph: hypergraph has no vertices")

	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("hgraph: vertex id out of range")

	// ErrEdgeRange indicates an edge id outside [0, m).
	ErrEdgeRange = errors.New("hgraph: edge id out of range")

	// ErrBlockRange indicates a block id outside [0, k).
	ErrBlockRange = errors.New("hgraph: block id out of range")

	// ErrVertexInactive indicates an operation referenced a vertex that
	// has already been contracted away.
	ErrVertexInactive = errors.New("hgraph: vertex is not active")

	// ErrSameVertex indicates Contract(u, u) was requested.
	ErrSameVertex = errors.New("hgraph: cannot contract a vertex with itself")

	// ErrFixedVertex indicates a ChangeNodePart on a vertex fixed to a
	// different block.
	ErrFixedVertex = errors.New("hgraph: vertex is fixed to a different block")

	// ErrEmptyStack indicates Uncontract was called with no pending
	// contraction to reverse.
	ErrEmptyStack = errors.New("hgraph: contraction stack is empty")

	// ErrMalformedPins indicates a hyperedge whose pin list contains a
	// duplicate or out-of-range vertex at construction time.
	ErrMalformedPins = errors.New("hgraph: malformed pin list")
)

// InternalError reports an invariant violation: a bug in the store
// itself rather than a caller mistake. Callers should treat these as
// fatal.
type InternalError struct {
	Invariant string // short name of the violated invariant
	Detail    string // human-readable context
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("hgraph: internal invariant %q violated: %s", e.Invariant, e.Detail)
}

func internalf(invariant, format string, args ...interface{}) error {
	return &InternalError{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}
