package rating_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgraph"
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

func TestHeavyEdgeRating_SharedEdge(t *testing.T) {
	h := scenario(t)
	r := rating.HeavyEdgeRating(h, 0, 2)
	require.Greater(t, r, 0.0)

	// vertices 0 and 5 share no hyperedge.
	require.Equal(t, 0.0, rating.HeavyEdgeRating(h, 0, 5))
}

func TestHeavyEdgeRating_HeaviestPairWins(t *testing.T) {
	h := scenario(t)
	// edge 1 (weight 1000) connects {0,1,3,4}; edge 0 (weight 1) connects {0,2}.
	require.Greater(t, rating.HeavyEdgeRating(h, 3, 4), rating.HeavyEdgeRating(h, 0, 2))
}

func TestEdgeFrequencyRating_AddsBonus(t *testing.T) {
	h := scenario(t)
	base := rating.EdgeFrequencyRating(h, 3, 4, nil)
	boosted := rating.EdgeFrequencyRating(h, 3, 4, map[int]float64{1: 5, 2: 5})
	require.Greater(t, boosted, base)
}

func TestSelectBest_RandomTiebreak(t *testing.T) {
	cands := []rating.Candidate{{Vertex: 1, Rating: 5}, {Vertex: 2, Rating: 5}, {Vertex: 3, Rating: 1}}
	r := rand.New(rand.NewSource(1))
	v, ok := rating.SelectBest(cands, nil, rating.Config{Acceptance: rating.RandomTiebreak}, r)
	require.True(t, ok)
	require.Contains(t, []int32{1, 2}, v)
}

func TestSelectBest_PreferUnmatched(t *testing.T) {
	cands := []rating.Candidate{{Vertex: 1, Rating: 5}, {Vertex: 2, Rating: 5}}
	matched := []bool{false, false, true}
	cfg := rating.Config{Acceptance: rating.PreferUnmatched}
	v, ok := rating.SelectBest(cands, matched, cfg, nil)
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}

func TestSelectBest_Empty(t *testing.T) {
	_, ok := rating.SelectBest(nil, nil, rating.Config{}, nil)
	require.False(t, ok)
}

func TestCoarsener_Run_ReachesThreshold(t *testing.T) {
	h := scenario(t)
	cfg := rating.DefaultConfig()
	cfg.MaxVertexWeightRatioT = 1 // stop at active count <= 1*k
	cfg.MaxVertexWeightRatioS = 2 // size cap S·W/(T·k) = 7, so the cap never blocks a merge
	c := rating.NewCoarsener(cfg)
	r := rand.New(rand.NewSource(42))

	n, err := c.Run(h, 2, r)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	active := 0
	for v := 0; v < h.N(); v++ {
		if h.IsActive(int32(v)) {
			active++
		}
	}
	require.LessOrEqual(t, active, cfg.StopThreshold(2))
	require.Equal(t, h.PendingContractions(), n)
}

func TestCoarsener_FixedVertexPolicy_FreeOnly(t *testing.T) {
	h, err := hgraph.New(3, [][]int32{{0, 1}, {1, 2}}, nil, nil, hgraph.WithFixedVertices([]int32{0, -1, -1}))
	require.NoError(t, err)
	cfg := rating.DefaultConfig()
	cfg.FixedVertexPolicy = rating.FreeOnly
	cfg.MaxVertexWeightRatioT = 0.5
	c := rating.NewCoarsener(cfg)
	_, err = c.Run(h, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, h.IsActive(0), "fixed vertex must never be contracted under FreeOnly")
}

func TestAdaptiveStopper_InfAlphaNeverStops(t *testing.T) {
	s := rating.NewAdaptiveStopper(math.Inf(1))
	s.Observe(1)
	s.Observe(-1)
	require.False(t, s.ShouldStop(1000))
}

func TestAdaptiveStopper_StopsOnFlatHistory(t *testing.T) {
	s := rating.NewAdaptiveStopper(0.01)
	for i := 0; i < 10; i++ {
		s.Observe(0)
	}
	require.True(t, s.ShouldStop(5))
}
