package hmetis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/partitionlab/gohypart/hgraph"
)

const (
	fmtNone         = 0
	fmtEdgeWeighted = 1
	fmtVertexWeighted = 10
	fmtBothWeighted = 11
)

// ReadHypergraph parses the hMetis-compatible format: line 1 is
// `m n [fmt [w]]`; lines 2..m+1 are hyperedges (an optional
// leading weight when fmt has the edge-weighted bit, then 1-based pin
// ids); lines m+2..m+n+1 are optional vertex weights when fmt has the
// vertex-weighted bit. Disk indices are 1-based; the returned
// Hypergraph uses 0-based ids throughout.
func ReadHypergraph(r io.Reader, opts ...hgraph.Option) (*hgraph.Hypergraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, ok := nextNonEmptyLine(scanner)
	if !ok {
		return nil, invalidf("empty input")
	}
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, invalidf("header must have at least 2 fields, got %q", header)
	}
	m, err := strconv.Atoi(fields[0])
	if err != nil || m < 0 {
		return nil, invalidf("bad hyperedge count %q", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return nil, invalidf("bad vertex count %q", fields[1])
	}
	format := fmtNone
	if len(fields) >= 3 {
		format, err = strconv.Atoi(fields[2])
		if err != nil {
			return nil, invalidf("bad fmt field %q", fields[2])
		}
	}
	if format != fmtNone && format != fmtEdgeWeighted && format != fmtVertexWeighted && format != fmtBothWeighted {
		return nil, invalidf("unsupported fmt %d", format)
	}
	edgeWeighted := format == fmtEdgeWeighted || format == fmtBothWeighted
	vertexWeighted := format == fmtVertexWeighted || format == fmtBothWeighted

	pins := make([][]int32, m)
	edgeWeight := make([]int64, m)
	for i := 0; i < m; i++ {
		line, ok := nextNonEmptyLine(scanner)
		if !ok {
			return nil, invalidf("expected %d hyperedge lines, got %d", m, i)
		}
		tokens := strings.Fields(line)
		start := 0
		w := int64(1)
		if edgeWeighted {
			if len(tokens) == 0 {
				return nil, invalidf("hyperedge %d: missing weight", i)
			}
			parsed, err := strconv.ParseInt(tokens[0], 10, 64)
			if err != nil {
				return nil, invalidf("hyperedge %d: bad weight %q", i, tokens[0])
			}
			w = parsed
			start = 1
		}
		if len(tokens)-start < 1 {
			return nil, invalidf("hyperedge %d: has no pins", i)
		}
		row := make([]int32, len(tokens)-start)
		for j, tok := range tokens[start:] {
			id, err := strconv.Atoi(tok)
			if err != nil || id < 1 || id > n {
				return nil, invalidf("hyperedge %d: bad pin id %q", i, tok)
			}
			row[j] = int32(id - 1)
		}
		pins[i] = row
		edgeWeight[i] = w
	}

	var vertexWeight []int64
	if vertexWeighted {
		vertexWeight = make([]int64, n)
		for i := 0; i < n; i++ {
			line, ok := nextNonEmptyLine(scanner)
			if !ok {
				return nil, invalidf("expected %d vertex weight lines, got %d", n, i)
			}
			tokens := strings.Fields(line)
			if len(tokens) == 0 {
				return nil, invalidf("vertex %d: missing weight", i)
			}
			w, err := strconv.ParseInt(tokens[0], 10, 64)
			if err != nil {
				return nil, invalidf("vertex %d: bad weight %q", i, tokens[0])
			}
			vertexWeight[i] = w
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hmetis.ReadHypergraph: %w", err)
	}

	h, err := hgraph.New(n, pins, edgeWeight, vertexWeight, opts...)
	if err != nil {
		return nil, fmt.Errorf("hmetis.ReadHypergraph: %w", err)
	}
	return h, nil
}

// WriteHypergraph writes h back out in the same format ReadHypergraph
// accepts, always with both weight sections present (fmt=11) so the
// round trip is lossless.
func WriteHypergraph(w io.Writer, h *hgraph.Hypergraph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", h.M(), h.N(), fmtBothWeighted); err != nil {
		return err
	}
	for e := int32(0); e < int32(h.M()); e++ {
		if _, err := fmt.Fprintf(bw, "%d", h.EdgeWeight(e)); err != nil {
			return err
		}
		var writeErr error
		h.ForEachPin(e, func(v int32) {
			if writeErr != nil {
				return
			}
			_, writeErr = fmt.Fprintf(bw, " %d", v+1)
		})
		if writeErr != nil {
			return writeErr
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	for v := int32(0); v < int32(h.N()); v++ {
		if _, err := fmt.Fprintf(bw, "%d\n", h.VertexWeight(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePartition writes one block index per line, 0-based, in original
// vertex order.
func WritePartition(w io.Writer, part []int32) error {
	bw := bufio.NewWriter(w)
	for _, p := range part {
		if _, err := fmt.Fprintf(bw, "%d\n", p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFixedVertices parses the fixed-vertex file: n lines,
// each `-1` (free) or a required block index, suitable for passing to
// hgraph.WithFixedVertices.
func ReadFixedVertices(r io.Reader, n int) ([]int32, error) {
	scanner := bufio.NewScanner(r)
	blocks := make([]int32, n)
	for i := 0; i < n; i++ {
		line, ok := nextNonEmptyLine(scanner)
		if !ok {
			return nil, invalidf("expected %d fixed-vertex lines, got %d", n, i)
		}
		val, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, invalidf("fixed-vertex line %d: bad value %q", i, line)
		}
		blocks[i] = int32(val)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hmetis.ReadFixedVertices: %w", err)
	}
	return blocks, nil
}

// ResultFilename implements its informational filename
// convention.
func ResultFilename(input string, k int, epsilon float64, seed int64) string {
	return fmt.Sprintf("%s.part%d.epsilon%g.seed%d.KaHyPar", input, k, epsilon, seed)
}

func nextNonEmptyLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}
