package fm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/fm"
	"github.com/partitionlab/gohypart/hgraph"
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
	require.NoError(t, h.SetK(2))
	return h
}

func TestComputeGain_TwoVertexEdge(t *testing.T) {
	h, err := hgraph.New(2, [][]int32{{0, 1}}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, h.SetK(2))
	require.NoError(t, h.AssignInitialPart(0, 0))
	require.NoError(t, h.AssignInitialPart(1, 0))
	require.Equal(t, int64(-1), fm.ComputeGain(h, 0, 1, hgraph.Km1))

	require.NoError(t, h.ChangeNodePart(1, 0, 1))
	require.Equal(t, int64(1), fm.ComputeGain(h, 0, 1, hgraph.Km1))
}

func TestComputeGain_ThreeVertexTriangle(t *testing.T) {
	h, err := hgraph.New(3, [][]int32{{0, 1}, {0, 2}}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, h.SetK(2))
	require.NoError(t, h.AssignInitialPart(0, 0))
	require.NoError(t, h.AssignInitialPart(1, 1))
	require.NoError(t, h.AssignInitialPart(2, 1))
	require.Equal(t, int64(2), fm.ComputeGain(h, 0, 1, hgraph.Km1))
	require.Equal(t, int64(1), fm.ComputeGain(h, 1, 0, hgraph.Km1))

	require.NoError(t, h.ChangeNodePart(1, 1, 0))
	require.Equal(t, int64(0), fm.ComputeGain(h, 0, 1, hgraph.Km1))
}

func TestComputeGain_CutIgnoresNonFlippingTransition(t *testing.T) {
	// One hyperedge touching 3 blocks with pin counts {0:1, 1:1, 2:5},
	// weight 10. Moving the sole block-0 pin into block 1 drops
	// connectivity 3->2, which still cuts the edge, so the cut gain
	// must be 0 even though the pin-count-transition sum (used by
	// km1) would report +10.
	h, err := hgraph.New(7, [][]int32{{0, 1, 2, 3, 4, 5, 6}}, []int64{10}, nil)
	require.NoError(t, err)
	require.NoError(t, h.SetK(3))
	parts := []int32{0, 1, 2, 2, 2, 2, 2}
	for v, b := range parts {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	require.Equal(t, int64(0), fm.ComputeGain(h, 0, 1, hgraph.Cut))
	require.Equal(t, int64(10), fm.ComputeGain(h, 0, 1, hgraph.Km1))
}

func TestComputeGain_CutCreditsLastPinLeavingBlock(t *testing.T) {
	// A hyperedge touching exactly 2 blocks: moving its sole
	// remaining pin out of block 0 drops connectivity 2->1, which
	// un-cuts the edge and should credit the full edge weight.
	h, err := hgraph.New(3, [][]int32{{0, 1, 2}}, []int64{5}, nil)
	require.NoError(t, err)
	require.NoError(t, h.SetK(3))
	parts := []int32{0, 1, 1}
	for v, b := range parts {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	require.Equal(t, int64(5), fm.ComputeGain(h, 0, 1, hgraph.Cut))
}

func TestRefiner_ImprovesOrPreservesCut(t *testing.T) {
	h := scenario(t)
	part := []int32{0, 0, 1, 0, 0, 1, 1}
	for v, b := range part {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	before := h.Evaluate(hgraph.Cut)

	r := fm.NewRefiner(fm.Config{
		Objective:      hgraph.Cut,
		MaxMoves:       50,
		FruitlessLimit: 3,
		Alpha:          math.Inf(1),
		Epsilon:        0.5,
		Rule:           fm.Simple,
		Mode:           fm.KWay,
	})
	_, err := r.Run(h, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.NoError(t, h.ValidateInvariants())
	require.LessOrEqual(t, h.Evaluate(hgraph.Cut), before)
}

func TestRefiner_NoBlocksConfigured(t *testing.T) {
	h, err := hgraph.New(2, [][]int32{{0, 1}}, nil, nil)
	require.NoError(t, err)
	r := fm.NewRefiner(fm.Config{})
	_, err = r.Run(h, nil)
	require.ErrorIs(t, err, fm.ErrNoBlocksConfigured)
}

func TestRefiner_RespectsBalanceConstraint(t *testing.T) {
	h := scenario(t)
	part := []int32{0, 0, 1, 0, 0, 1, 1}
	for v, b := range part {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	r := fm.NewRefiner(fm.Config{
		MaxMoves:       50,
		FruitlessLimit: 5,
		Alpha:          math.Inf(1),
		Epsilon:        0.0,
		Rule:           fm.Simple,
		Mode:           fm.KWay,
	})
	_, err := r.Run(h, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.True(t, h.IsBalanced(0.05))
}
