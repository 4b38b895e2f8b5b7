package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgraph"
)

func TestContractUncontract_RestoresSnapshot(t *testing.T) {
	h := scenario(t)
	before := h.TakeSnapshot()

	require.NoError(t, h.Contract(0, 2)) // disable case: edge 0 shared by 0 and 2
	require.NoError(t, h.Contract(1, 3)) // rewire case: edge 2 gains vertex1 via rewiring of 3

	require.False(t, h.IsActive(2))
	require.False(t, h.IsActive(3))
	require.Equal(t, int64(2), h.VertexWeight(0)) // absorbed vertex 2's default weight of 1
	require.Equal(t, int64(2), h.VertexWeight(1)) // absorbed vertex 3's default weight of 1

	u, v, err := h.Uncontract()
	require.NoError(t, err)
	require.Equal(t, int32(1), u)
	require.Equal(t, int32(3), v)

	u, v, err = h.Uncontract()
	require.NoError(t, err)
	require.Equal(t, int32(0), u)
	require.Equal(t, int32(2), v)

	require.True(t, h.IsActive(2))
	require.True(t, h.IsActive(3))
	after := h.TakeSnapshot()
	require.True(t, before.Equal(after), "contract+uncontract must restore byte-identical state")
}

func TestContract_DisablesSharedPin(t *testing.T) {
	h := scenario(t)
	require.NoError(t, h.Contract(0, 2))
	require.Equal(t, 1, h.EdgeSize(0)) // edge {0,2} loses the duplicate pin

	var pins []int32
	h.ForEachPin(0, func(v int32) { pins = append(pins, v) })
	require.Equal(t, []int32{0}, pins)
}

func TestContract_RewiresNewPin(t *testing.T) {
	h := scenario(t)
	require.NoError(t, h.Contract(1, 3))
	// edge 1 originally {0,1,3,4}; 3 merges into 1, which is already
	// present, so edge 1 disables the slot instead of rewiring.
	require.Equal(t, 3, h.EdgeSize(1))

	// edge 2 originally {3,4,6}; 1 is not a pin there, so 3's slot is
	// rewired to 1.
	var pins []int32
	h.ForEachPin(2, func(v int32) { pins = append(pins, v) })
	require.ElementsMatch(t, []int32{1, 4, 6}, pins)
}

func TestContract_RejectsSameVertex(t *testing.T) {
	h := scenario(t)
	require.ErrorIs(t, h.Contract(0, 0), hgraph.ErrSameVertex)
}

func TestContract_RejectsInactive(t *testing.T) {
	h := scenario(t)
	require.NoError(t, h.Contract(0, 2))
	require.ErrorIs(t, h.Contract(0, 2), hgraph.ErrVertexInactive)
}

func TestUncontract_EmptyStack(t *testing.T) {
	h := scenario(t)
	_, _, err := h.Uncontract()
	require.ErrorIs(t, err, hgraph.ErrEmptyStack)
}

func TestContractUncontract_WithParts(t *testing.T) {
	h := scenario(t)
	require.NoError(t, h.SetK(2))
	part := []int32{0, 0, 1, 0, 0, 1, 1}
	for v, b := range part {
		require.NoError(t, h.AssignInitialPart(int32(v), b))
	}
	before := h.TakeSnapshot()
	beforeW0, beforeW1 := h.BlockWeight(0), h.BlockWeight(1)

	require.NoError(t, h.Contract(0, 2)) // merges block 0 and block 1 vertex
	require.NoError(t, h.ValidateInvariants())

	_, _, err := h.Uncontract()
	require.NoError(t, err)
	require.Equal(t, beforeW0, h.BlockWeight(0))
	require.Equal(t, beforeW1, h.BlockWeight(1))
	after := h.TakeSnapshot()
	require.True(t, before.Equal(after))
}
