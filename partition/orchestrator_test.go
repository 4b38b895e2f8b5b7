package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/fm"
	"github.com/partitionlab/gohypart/flow"
	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/initial"
	"github.com/partitionlab/gohypart/partition"
	"github.com/partitionlab/gohypart/rating"
)

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

func defaultTestConfig() partition.Config {
	ratingCfg := rating.DefaultConfig()
	ratingCfg.MaxVertexWeightRatioT = 2 // stop threshold T·k = 4; with S=1 the size cap S·W/(T·k) is 1, so no two unit-weight vertices merge
	return partition.Config{
		K:         2,
		Epsilon:   0.5,
		Objective: hgraph.Cut,
		Mode:      partition.Direct,
		Seed:      42,
		Rating:    ratingCfg,
		Initial:   initial.DefaultConfig(),
		FM: fm.Config{
			FruitlessLimit: 10,
			Alpha:          1,
			Rule:           fm.Simple,
		},
		Flow: flow.Config{
			Solver:                flow.EdmondsKarpKind,
			Alpha:                 4,
			UseMostBalancedMinCut: true,
			MaxAlphaDoublings:     2,
		},
		Refiners: partition.FMAndFlow,
	}
}

func TestPartition_DirectKWay_ProducesFeasiblePartition(t *testing.T) {
	h := scenario(t)
	cfg := defaultTestConfig()
	result, err := partition.Partition(h, cfg)
	require.NoError(t, err)
	require.True(t, result.Feasible)
	for v := int32(0); v < 7; v++ {
		require.GreaterOrEqual(t, h.Part(v), int32(0))
		require.Less(t, h.Part(v), int32(2))
	}
}

func TestPartition_RejectsVCyclesWithRecursiveMode(t *testing.T) {
	h := scenario(t)
	cfg := defaultTestConfig()
	cfg.Mode = partition.Recursive
	cfg.VCycles = 1
	_, err := partition.Partition(h, cfg)
	require.ErrorIs(t, err, partition.ErrInvalidConfig)
}

func TestPartition_RecursiveBisectionMode(t *testing.T) {
	h := scenario(t)
	cfg := defaultTestConfig()
	cfg.Mode = partition.Recursive
	cfg.K = 4
	result, err := partition.Partition(h, cfg)
	require.NoError(t, err)
	for v := int32(0); v < 7; v++ {
		require.GreaterOrEqual(t, h.Part(v), int32(0))
		require.Less(t, h.Part(v), int32(4))
	}
	_ = result
}

func TestPartition_DeterministicGivenSameSeed(t *testing.T) {
	cfg := defaultTestConfig()

	h1 := scenario(t)
	r1, err := partition.Partition(h1, cfg)
	require.NoError(t, err)

	h2 := scenario(t)
	r2, err := partition.Partition(h2, cfg)
	require.NoError(t, err)

	require.Equal(t, r1.Objective, r2.Objective)
	require.Equal(t, r1.Imbalance, r2.Imbalance)
	for v := int32(0); v < 7; v++ {
		require.Equal(t, h1.Part(v), h2.Part(v))
	}
}

func TestPartition_VCycleRepeatsInDirectMode(t *testing.T) {
	h := scenario(t)
	cfg := defaultTestConfig()
	cfg.VCycles = 1
	result, err := partition.Partition(h, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, result.Cycles)
}
