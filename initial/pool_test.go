package initial_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/initial"
)

// scenario builds a concrete n=7/m=4 example hypergraph.
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

func TestDirectKWay_ProducesBalancedPartition(t *testing.T) {
	h := scenario(t)
	cfg := initial.DefaultConfig()
	cfg.Epsilon = 0.5
	err := initial.DirectKWay(h, 2, cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for v := int32(0); v < 7; v++ {
		require.GreaterOrEqual(t, h.Part(v), int32(0))
		require.Less(t, h.Part(v), int32(2))
	}
	require.True(t, h.IsBalanced(0.5))
}

func TestDirectKWay_HonorsFixedVertices(t *testing.T) {
	fixed := []int32{-1, -1, -1, -1, -1, -1, 1}
	h, err := hgraph.New(7, [][]int32{{0, 2}, {0, 1, 3, 4}, {3, 4, 6}, {2, 5, 6}}, []int64{1, 1000, 1, 1000}, nil, hgraph.WithFixedVertices(fixed))
	require.NoError(t, err)
	err = initial.DirectKWay(h, 2, initial.DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, int32(1), h.Part(6))
}

func TestRecursiveBisection_ProducesFourWayPartition(t *testing.T) {
	h := scenario(t)
	cfg := initial.DefaultConfig()
	cfg.Epsilon = 1.0
	err := initial.RecursiveBisection(h, 4, cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	for v := int32(0); v < 7; v++ {
		require.GreaterOrEqual(t, h.Part(v), int32(0))
		require.Less(t, h.Part(v), int32(4))
	}
}

func TestRecursiveBisection_HonorsFixedVertices(t *testing.T) {
	fixed := []int32{-1, -1, -1, -1, -1, -1, 2}
	h, err := hgraph.New(7, [][]int32{{0, 2}, {0, 1, 3, 4}, {3, 4, 6}, {2, 5, 6}}, []int64{1, 1000, 1, 1000}, nil, hgraph.WithFixedVertices(fixed))
	require.NoError(t, err)
	err = initial.RecursiveBisection(h, 4, initial.DefaultConfig(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Equal(t, int32(2), h.Part(6))
}

func TestDirectKWay_RejectsTooFewBlocks(t *testing.T) {
	h := scenario(t)
	err := initial.DirectKWay(h, 1, initial.DefaultConfig(), nil)
	require.ErrorIs(t, err, initial.ErrNoBlocks)
}
