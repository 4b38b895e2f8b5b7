package hgbuilder

import "fmt"

// impl_grid.go - Grid(rows, cols): a row-major 2D grid expressed in the
// hMetis-style netlist convention where an entire row or column of
// cells shares one net (common for regular VLSI/FPGA placement
// benchmarks), rather than as 4-neighborhood pairwise edges.
//
// Contract:
//   - rows >= 1, cols >= 1 (else ErrTooFewVertices).
//   - Vertex IDs are v = r*cols + c, row-major.
//   - Emits one hyperedge per row (cols pins) for rows with cols >= 2,
//     then one hyperedge per column (rows pins) for columns with
//     rows >= 2, in row-major then column-major order.
//   - Weight policy: cfg.edgeWeightFn(cfg.rng, arity) per edge.

const (
	methodGrid  = "Grid"
	minGridSize = 1
)

// Grid returns a Constructor building the rows×cols row/column-net
// grid described above. The caller must size the hypergraph to
// exactly rows*cols vertices.
func Grid(rows, cols int) Constructor {
	return func(s *state, cfg builderConfig) error {
		if rows < minGridSize || cols < minGridSize {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w", methodGrid, rows, cols, minGridSize, ErrTooFewVertices)
		}
		if n := rows * cols; n != s.n {
			return builderErrorf(methodGrid, "rows*cols=%d does not match hypergraph size %d", n, s.n)
		}

		id := func(r, c int) int32 { return int32(r*cols + c) }

		if cols >= 2 {
			for r := 0; r < rows; r++ {
				pins := make([]int32, cols)
				for c := 0; c < cols; c++ {
					pins[c] = id(r, c)
				}
				w := cfg.edgeWeightFn(cfg.rng, cols)
				if err := s.addEdge(fmt.Sprintf("%s:row", methodGrid), pins, w); err != nil {
					return err
				}
			}
		}

		if rows >= 2 {
			for c := 0; c < cols; c++ {
				pins := make([]int32, rows)
				for r := 0; r < rows; r++ {
					pins[r] = id(r, c)
				}
				w := cfg.edgeWeightFn(cfg.rng, rows)
				if err := s.addEdge(fmt.Sprintf("%s:col", methodGrid), pins, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
