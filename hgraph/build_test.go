package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgraph"
)

// scenario builds a small n=7, m=4 example hypergraph: pins
// [{0,2},{0,1,3,4},{3,4,6},{2,5,6}], weights [1,1000,1,1000].
func scenario(t *testing.T) *hgraph.Hypergraph {
	t.Helper()
	pins := [][]int32{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	}
	weights := []int64{1, 1000, 1, 1000}
	h, err := hgraph.New(7, pins, weights, nil)
	require.NoError(t, err)
	return h
}

func TestNew_Rejects(t *testing.T) {
	_, err := hgraph.New(0, nil, nil, nil)
	require.Error(t, err)

	_, err = hgraph.New(3, [][]int32{{0, 5}}, nil, nil)
	require.Error(t, err)

	_, err = hgraph.New(3, [][]int32{{0, 0}}, nil, nil)
	require.Error(t, err)
}

func TestEdgeSizeAndWeight(t *testing.T) {
	h := scenario(t)
	require.Equal(t, 7, h.N())
	require.Equal(t, 4, h.M())
	require.Equal(t, 2, h.EdgeSize(0))
	require.Equal(t, int64(1000), h.EdgeWeight(1))
}

func TestIncidenceConsistency(t *testing.T) {
	h := scenario(t)
	// vertex 3 is a pin of edges 1 and 2.
	var got []int32
	h.ForEachIncidentEdge(3, func(e int32) { got = append(got, e) })
	require.ElementsMatch(t, []int32{1, 2}, got)

	var pins []int32
	h.ForEachPin(1, func(v int32) { pins = append(pins, v) })
	require.ElementsMatch(t, []int32{0, 1, 3, 4}, pins)
}

func TestExpectedPartitionObjective(t *testing.T) {
	h := scenario(t)
	require.NoError(t, h.SetK(2))
	part := []int32{0, 0, 1, 0, 0, 1, 1}
	for v, b := range part {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	require.Equal(t, int64(2), h.Evaluate(hgraph.Cut))
	require.NoError(t, h.ValidateInvariants())
}
