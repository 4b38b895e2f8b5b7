package initial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hgraph"
)

func TestModularityScore_PrefersNaturalCommunities(t *testing.T) {
	// Two tight triangles {0,1,2} and {3,4,5} joined by one light bridge
	// edge: a partition along the bridge should score higher modularity
	// than a partition that splits a triangle.
	pins := [][]int32{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	}
	weights := []int64{10, 10, 10, 10, 10, 10, 1}
	h, err := hgraph.New(6, pins, weights, nil)
	require.NoError(t, err)

	free := []int32{0, 1, 2, 3, 4, 5}
	natural := []int32{0, 0, 0, 1, 1, 1}
	split := []int32{0, 1, 0, 1, 1, 1}

	qNatural := modularityScore(h, free, natural, nil, 2)
	qSplit := modularityScore(h, free, split, nil, 2)
	require.Greater(t, qNatural, qSplit)
}
