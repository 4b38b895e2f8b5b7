package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/flow"
)

func TestMaximumFlow_DisconnectedSourceSink(t *testing.T) {
	n, err := flow.NewNetwork(4, 0, 3)
	require.NoError(t, err)
	_, err = n.AddEdge(0, 1, 5)
	require.NoError(t, err)
	_, err = n.AddEdge(2, 3, 5)
	require.NoError(t, err)

	for _, s := range []flow.Solver{flow.EdmondsKarp{}, flow.PushRelabel{}, flow.BoykovKolmogorov{}, flow.IncrementalBFS{}} {
		got, err := s.MaximumFlow(n)
		require.NoError(t, err)
		require.Equal(t, int64(0), got)
		n.Reset()
	}
}

// longChain stresses the gap heuristic / multi-hop path reconstruction:
// a straight line of unit-capacity edges source->1->2->...->sink.
func longChain(t *testing.T, length int) *flow.Network {
	t.Helper()
	n, err := flow.NewNetwork(int32(length+1), 0, int32(length))
	require.NoError(t, err)
	for i := 0; i < length; i++ {
		_, err := n.AddEdge(int32(i), int32(i+1), 1)
		require.NoError(t, err)
	}
	return n
}

func TestMaximumFlow_LongChainUnitCapacity(t *testing.T) {
	for _, s := range []flow.Solver{flow.EdmondsKarp{}, flow.PushRelabel{}, flow.BoykovKolmogorov{}, flow.IncrementalBFS{}} {
		got, err := s.MaximumFlow(longChain(t, 8))
		require.NoError(t, err)
		require.Equal(t, int64(1), got)
	}
}

func TestMaximumFlow_ParallelUnitPaths(t *testing.T) {
	n, err := flow.NewNetwork(4, 0, 3)
	require.NoError(t, err)
	_, err = n.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = n.AddEdge(0, 2, 1)
	require.NoError(t, err)
	_, err = n.AddEdge(1, 3, 1)
	require.NoError(t, err)
	_, err = n.AddEdge(2, 3, 1)
	require.NoError(t, err)

	for _, s := range []flow.Solver{flow.EdmondsKarp{}, flow.PushRelabel{}, flow.BoykovKolmogorov{}, flow.IncrementalBFS{}} {
		got, err := s.MaximumFlow(n)
		require.NoError(t, err)
		require.Equal(t, int64(2), got)
		n.Reset()
	}
}
