package hmetis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/hmetis"
)

const sampleHypergraph = `4 7
1 2 3
2 4
4 5 6 7
6 7
`

func TestReadHypergraph_ParsesUnweighted(t *testing.T) {
	h, err := hmetis.ReadHypergraph(strings.NewReader(sampleHypergraph))
	require.NoError(t, err)
	require.Equal(t, 4, h.M())
	require.Equal(t, 7, h.N())
	require.Equal(t, int64(1), h.EdgeWeight(0))
	require.Equal(t, int64(1), h.VertexWeight(0))

	var pins []int32
	h.ForEachPin(0, func(v int32) { pins = append(pins, v) })
	require.ElementsMatch(t, []int32{0, 1, 2}, pins)
}

func TestReadHypergraph_ParsesBothWeighted(t *testing.T) {
	const in = `2 3 11
5 1 2
3 2 3
10
20
30
`
	h, err := hmetis.ReadHypergraph(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, int64(5), h.EdgeWeight(0))
	require.Equal(t, int64(3), h.EdgeWeight(1))
	require.Equal(t, int64(10), h.VertexWeight(0))
	require.Equal(t, int64(30), h.VertexWeight(2))
}

func TestReadHypergraph_RejectsOutOfRangePin(t *testing.T) {
	const in = "1 2\n1 9\n"
	_, err := hmetis.ReadHypergraph(strings.NewReader(in))
	require.ErrorIs(t, err, hmetis.ErrInvalidInput)
}

func TestReadHypergraph_RejectsTruncatedFile(t *testing.T) {
	const in = "2 3\n1 2\n"
	_, err := hmetis.ReadHypergraph(strings.NewReader(in))
	require.ErrorIs(t, err, hmetis.ErrInvalidInput)
}

func TestWriteHypergraph_RoundTrips(t *testing.T) {
	h, err := hmetis.ReadHypergraph(strings.NewReader(sampleHypergraph))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, hmetis.WriteHypergraph(&buf, h))

	h2, err := hmetis.ReadHypergraph(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, h.M(), h2.M())
	require.Equal(t, h.N(), h2.N())
	for e := int32(0); e < int32(h.M()); e++ {
		var a, b []int32
		h.ForEachPin(e, func(v int32) { a = append(a, v) })
		h2.ForEachPin(e, func(v int32) { b = append(b, v) })
		require.ElementsMatch(t, a, b)
	}
}

func TestWritePartition_WritesOneBlockPerLine(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, hmetis.WritePartition(&buf, []int32{0, 1, 0, 1}))
	require.Equal(t, "0\n1\n0\n1\n", buf.String())
}

func TestReadFixedVertices_ParsesFreeAndFixed(t *testing.T) {
	const in = "-1\n0\n-1\n1\n"
	blocks, err := hmetis.ReadFixedVertices(strings.NewReader(in), 4)
	require.NoError(t, err)
	require.Equal(t, []int32{-1, 0, -1, 1}, blocks)
}

func TestReadFixedVertices_RejectsTruncated(t *testing.T) {
	_, err := hmetis.ReadFixedVertices(strings.NewReader("-1\n0\n"), 4)
	require.ErrorIs(t, err, hmetis.ErrInvalidInput)
}

func TestResultFilename_MatchesConvention(t *testing.T) {
	got := hmetis.ResultFilename("graph.hgr", 4, 0.05, 42)
	require.Equal(t, "graph.hgr.part4.epsilon0.05.seed42.KaHyPar", got)
}
