package hgbuilder

import (
	"fmt"

	"github.com/partitionlab/gohypart/hgraph"
)

// state accumulates pins and edge weights across constructors before a
// single hgraph.New call assembles the final Hypergraph. hgraph.New
// requires its complete pin set up front, unlike core.Graph's
// incremental AddVertex/AddEdge, so Constructor closures append to
// state rather than mutating a live hypergraph.
type state struct {
	n    int
	pins [][]int32
	ew   []int64
}

// addEdge validates pins against [0,n) and appends a hyperedge with
// weight w.
func (s *state) addEdge(method string, pins []int32, w int64) error {
	for _, v := range pins {
		if v < 0 || int(v) >= s.n {
			return builderErrorf(method, "pin %d out of range [0,%d)", v, s.n)
		}
	}
	s.pins = append(s.pins, pins)
	s.ew = append(s.ew, w)
	return nil
}

// Constructor appends a deterministic batch of hyperedges to the
// shared builder state, using the resolved builderConfig for weights
// and randomness. Constructors MUST validate parameters early and
// return sentinel errors; they never panic at runtime.
type Constructor func(s *state, cfg builderConfig) error

// BuildHypergraph creates a hypergraph over n vertices by resolving
// bopts into a builderConfig and running each constructor in order,
// then assembling the accumulated pins/weights into a single
// hgraph.New call. Vertex weights are resolved once from
// cfg.vertexWeightFn across all n vertices.
//
// Any constructor error is wrapped with "BuildHypergraph: %w" and
// returned immediately.
func BuildHypergraph(n int, bopts []BuilderOption, cons ...Constructor) (*hgraph.Hypergraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("BuildHypergraph: n=%d: %w", n, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(bopts...)
	st := &state{n: n}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(st, cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	vw := make([]int64, n)
	for v := 0; v < n; v++ {
		vw[v] = cfg.vertexWeightFn(v)
	}

	return hgraph.New(n, st.pins, st.ew, vw)
}
