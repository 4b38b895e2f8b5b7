package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/flow"
	"github.com/partitionlab/gohypart/hgraph"
)

// scenario builds a small n=7, m=4 example hypergraph, partitioned as
// the expected optimum {0,0,1,0,0,1,1}.
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
	require.NoError(t, h.SetK(2))
	parts := []int32{0, 0, 1, 0, 0, 1, 1}
	for v, p := range parts {
		require.NoError(t, h.AssignInitialPart(int32(v), p))
	}
	return h
}

func TestBuildSubproblem_IncludesCutHyperedges(t *testing.T) {
	h := scenario(t)
	sp, err := flow.BuildSubproblem(h, 0, 1, 2.0, hgraph.Cut)
	require.NoError(t, err)
	require.NotNil(t, sp.Net)
	require.Greater(t, sp.Net.N(), int32(2))
}

func TestRefinePair_NoWorseningOnAlreadyOptimalCut(t *testing.T) {
	h := scenario(t)
	before := h.Evaluate(hgraph.Cut)

	r := flow.NewRefiner(flow.Config{
		Objective:             hgraph.Cut,
		Solver:                flow.EdmondsKarpKind,
		Alpha:                 2.0,
		Epsilon:               0.03,
		UseMostBalancedMinCut: true,
	})
	_, err := r.RefinePair(h, 0, 1, true)
	require.NoError(t, err)

	after := h.Evaluate(hgraph.Cut)
	require.LessOrEqual(t, after, before)
}

func TestRefinePair_Idempotent(t *testing.T) {
	h := scenario(t)
	r := flow.NewRefiner(flow.Config{
		Objective:             hgraph.Cut,
		Solver:                flow.EdmondsKarpKind,
		Alpha:                 2.0,
		Epsilon:               0.03,
		UseMostBalancedMinCut: true,
	})
	_, err := r.RefinePair(h, 0, 1, true)
	require.NoError(t, err)
	objAfterFirst := h.Evaluate(hgraph.Cut)

	improved, err := r.RefinePair(h, 0, 1, true)
	require.NoError(t, err)
	require.False(t, improved)
	require.Equal(t, objAfterFirst, h.Evaluate(hgraph.Cut))
}

func TestCutWeight_MatchesCutHyperedges(t *testing.T) {
	h := scenario(t)
	// Under the expected optimum {0,0,1,0,0,1,1}, edge 0 ({0,2}, weight
	// 1) and edge 2 ({3,4,6}, weight 1) cross the two blocks; edges 1
	// and 3 each stay within one block, giving a cut objective of 2
	// for this scenario.
	require.Equal(t, int64(2), flow.CutWeight(h, 0, 1))
}

func TestSmallCutSkip(t *testing.T) {
	require.True(t, flow.SmallCutSkip(5, false))
	require.False(t, flow.SmallCutSkip(5, true))
	require.False(t, flow.SmallCutSkip(11, false))
}

func TestExecutionPolicy_Constant(t *testing.T) {
	p := flow.NewExecutionPolicy(flow.ConstantPolicy, 2, 0)
	require.True(t, p.ShouldRun(10))
	require.False(t, p.ShouldRun(10))
	require.True(t, p.ShouldRun(10))
}

func TestExecutionPolicy_Exponential(t *testing.T) {
	p := flow.NewExecutionPolicy(flow.ExponentialPolicy, 0, 0)
	require.True(t, p.ShouldRun(5))  // crosses threshold 1
	require.True(t, p.ShouldRun(3))  // crosses threshold 2
	require.False(t, p.ShouldRun(3)) // threshold now 4, 3 does not cross
}
