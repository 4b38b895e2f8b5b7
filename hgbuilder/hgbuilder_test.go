package hgbuilder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgbuilder"
	"github.com/partitionlab/gohypart/hgraph"
)

func TestBuildHypergraph_Complete(t *testing.T) {
	h, err := hgbuilder.BuildHypergraph(5, nil, hgbuilder.Complete(5, 2))
	require.NoError(t, err)
	require.Equal(t, 5, h.N())
	require.Equal(t, 10, h.M()) // C(5,2)
}

func TestBuildHypergraph_Star(t *testing.T) {
	h, err := hgbuilder.BuildHypergraph(4, nil, hgbuilder.Star(4))
	require.NoError(t, err)
	require.Equal(t, 4, h.M()) // 3 hub-leaf edges + 1 all-span edge
}

func TestBuildHypergraph_Grid(t *testing.T) {
	h, err := hgbuilder.BuildHypergraph(6, nil, hgbuilder.Grid(2, 3))
	require.NoError(t, err)
	require.Equal(t, 6, h.N())
	require.Equal(t, 5, h.M()) // 2 row nets + 3 column nets
}

func pinsOf(h *hgraph.Hypergraph, e int32) []int32 {
	var pins []int32
	h.ForEachPin(e, func(v int32) { pins = append(pins, v) })
	return pins
}

func TestBuildHypergraph_Bipartite_Deterministic(t *testing.T) {
	cons := hgbuilder.Bipartite(3, 10, 4)
	h1, err := hgbuilder.BuildHypergraph(13, []hgbuilder.BuilderOption{hgbuilder.WithSeed(7)}, cons)
	require.NoError(t, err)
	h2, err := hgbuilder.BuildHypergraph(13, []hgbuilder.BuilderOption{hgbuilder.WithSeed(7)}, cons)
	require.NoError(t, err)
	require.Equal(t, 3, h1.M())
	for e := int32(0); e < 3; e++ {
		require.ElementsMatch(t, pinsOf(h1, e), pinsOf(h2, e))
	}
}

func TestBuildHypergraph_Bipartite_RequiresRand(t *testing.T) {
	_, err := hgbuilder.BuildHypergraph(13, nil, hgbuilder.Bipartite(3, 10, 4))
	require.ErrorIs(t, err, hgbuilder.ErrNeedRandSource)
}

func TestBuildHypergraph_RandomSparse_RejectsBadProbability(t *testing.T) {
	_, err := hgbuilder.BuildHypergraph(10, []hgbuilder.BuilderOption{hgbuilder.WithSeed(1)},
		hgbuilder.RandomSparse(10, 5, 2, 3, 1.5))
	require.ErrorIs(t, err, hgbuilder.ErrInvalidProbability)
}

func TestBuildHypergraph_RandomSparse_ProducesBoundedArity(t *testing.T) {
	h, err := hgbuilder.BuildHypergraph(10, []hgbuilder.BuilderOption{hgbuilder.WithSeed(3)},
		hgbuilder.RandomSparse(10, 20, 2, 4, 1.0))
	require.NoError(t, err)
	require.Equal(t, 20, h.M())
	for e := int32(0); e < 20; e++ {
		require.GreaterOrEqual(t, h.EdgeSize(e), 2)
		require.LessOrEqual(t, h.EdgeSize(e), 4)
	}
}

func TestBuildHypergraph_PathAndCycle(t *testing.T) {
	hp, err := hgbuilder.BuildHypergraph(5, nil, hgbuilder.Path(5, 2))
	require.NoError(t, err)
	require.Equal(t, 4, hp.M())

	hc, err := hgbuilder.BuildHypergraph(5, nil, hgbuilder.Cycle(5, 2))
	require.NoError(t, err)
	require.Equal(t, 5, hc.M())
}

func TestBuildHypergraph_RejectsTooFewVertices(t *testing.T) {
	_, err := hgbuilder.BuildHypergraph(1, nil, hgbuilder.Complete(1, 2))
	require.True(t, errors.Is(err, hgbuilder.ErrTooFewVertices))
}

func TestBuildHypergraph_WeightFnApplied(t *testing.T) {
	h, err := hgbuilder.BuildHypergraph(4, []hgbuilder.BuilderOption{
		hgbuilder.WithEdgeWeightFn(func(_ *rand.Rand, arity int) int64 { return int64(arity * 10) }),
	}, hgbuilder.Star(4))
	require.NoError(t, err)
	require.Equal(t, int64(40), h.EdgeWeight(int32(h.M()-1))) // the all-span edge has arity 4
}
