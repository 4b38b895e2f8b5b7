package flow

import (
	"github.com/partitionlab/gohypart/hgraph"
)

// nodeKind distinguishes what a Network vertex stands for in the
// original hypergraph, needed when translating a min-cut back into
// ChangeNodePart calls.
type nodeKind uint8

const (
	nodeVertex nodeKind = iota // a real hypergraph vertex, reassignable
	nodeEdgeIn
	nodeEdgeOut
	nodeTerminal // collapsed far-side pins; never reassigned
)

// Subproblem is a block-pair flow network built from a BFS-bounded
// neighbourhood of a hypergraph cut, together with
// enough bookkeeping to translate a computed min-cut back into moves on
// the original Hypergraph.
type Subproblem struct {
	Net *Network

	kind     []nodeKind
	hgVertex []int32 // network node -> hypergraph vertex id, for nodeVertex only
	nodeOf   map[int32]int32
	edgeOf   map[int32][2]int32 // hyperedge id -> (ein, eout)

	b0, b1 int32
	infCap int64

	// dist is each included hypergraph vertex's BFS distance from its
	// side's cut frontier, used to break ties during most-balanced
	// minimum cut selection.
	dist map[int32]int
}

// BuildSubproblem grows a BFS frontier of radius bounded by α·W(b0) on
// the b0 side and α·W(b1) on the b1 side, starting from the vertices
// incident to a hyperedge cut between the two blocks, and returns the
// flow network: every included hyperedge is split into an (ein,eout)
// pair joined by an arc of
// capacity ω(e), with every incident included pin wired ein<-pin and
// eout->pin; pins beyond the frontier collapse directly onto the
// source (b0 side) or sink (b1 side) terminal. Hyperedges touching a
// third block are dropped when obj is Cut and kept when obj is Km1, with
// their third-block pins collapsed onto the source terminal.
func BuildSubproblem(h *hgraph.Hypergraph, b0, b1 int32, alpha float64, obj hgraph.Objective) (*Subproblem, error) {
	limit0 := int64(alpha * float64(h.BlockWeight(b0)))
	limit1 := int64(alpha * float64(h.BlockWeight(b1)))

	dist := make(map[int32]int) // hypergraph vertex -> BFS distance from its own side's frontier seed
	var frontier0, frontier1 []int32

	for v := int32(0); v < int32(h.N()); v++ {
		if !h.IsActive(v) {
			continue
		}
		p := h.Part(v)
		if p != b0 && p != b1 {
			continue
		}
		isCutVertex := false
		h.ForEachIncidentEdge(v, func(e int32) {
			if h.IsCut(e) {
				isCutVertex = true
			}
		})
		if !isCutVertex {
			continue
		}
		if p == b0 {
			frontier0 = append(frontier0, v)
		} else {
			frontier1 = append(frontier1, v)
		}
	}

	grow := func(seeds []int32, part int32, weightLimit int64) map[int32]bool {
		included := map[int32]bool{}
		var total int64
		queue := append([]int32(nil), seeds...)
		for _, v := range seeds {
			included[v] = true
			dist[v] = 0
			total += h.VertexWeight(v)
		}
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			if total >= weightLimit {
				break
			}
			h.ForEachIncidentEdge(v, func(e int32) {
				if total >= weightLimit {
					return
				}
				h.ForEachPin(e, func(u int32) {
					if total >= weightLimit || included[u] || h.Part(u) != part {
						return
					}
					included[u] = true
					dist[u] = dist[v] + 1
					total += h.VertexWeight(u)
					queue = append(queue, u)
				})
			})
		}
		return included
	}

	included0 := grow(frontier0, b0, maxI64(limit0, 1))
	included1 := grow(frontier1, b1, maxI64(limit1, 1))

	var totalWeight int64
	for e := int32(0); e < int32(h.M()); e++ {
		totalWeight += h.EdgeWeight(e)
	}
	infCap := totalWeight + 1

	sp := &Subproblem{
		kind:   nil,
		nodeOf: map[int32]int32{},
		edgeOf: map[int32][2]int32{},
		b0:     b0,
		b1:     b1,
		infCap: infCap,
		dist:   dist,
	}

	// Node 0 = source (b0 terminal), node 1 = sink (b1 terminal).
	const source, sink = int32(0), int32(1)
	sp.kind = append(sp.kind, nodeTerminal, nodeTerminal)
	sp.hgVertex = append(sp.hgVertex, -1, -1)

	// nodeFor resolves a pin to its network node: an included vertex gets
	// its own reassignable node (allocated below before edges are
	// wired), everything else collapses onto whichever terminal matches
	// its current block (a third-block pin under Km1 anchors on the
	// source terminal, since it is never a reassignment candidate).
	nodeFor := func(v int32) int32 {
		if id, ok := sp.nodeOf[v]; ok {
			return id
		}
		var id int32
		switch {
		case h.Part(v) == b1:
			id = sink
		default:
			id = source
		}
		sp.nodeOf[v] = id
		return id
	}

	relevant := map[int32]bool{}
	for e := int32(0); e < int32(h.M()); e++ {
		touchesB0, touchesB1, touchesOther := false, false, false
		h.ForEachPin(e, func(v int32) {
			switch h.Part(v) {
			case b0:
				touchesB0 = true
			case b1:
				touchesB1 = true
			default:
				touchesOther = true
			}
		})
		if !touchesB0 && !touchesB1 {
			continue
		}
		if touchesOther && obj == hgraph.Cut {
			continue
		}
		relevant[e] = true
	}

	nodeCount := int32(2)
	for e := range relevant {
		ein := nodeCount
		eout := nodeCount + 1
		nodeCount += 2
		sp.kind = append(sp.kind, nodeEdgeIn, nodeEdgeOut)
		sp.hgVertex = append(sp.hgVertex, -1, -1)
		sp.edgeOf[e] = [2]int32{ein, eout}
	}
	for e := range relevant {
		h.ForEachPin(e, func(v int32) {
			if included0[v] || included1[v] {
				if _, ok := sp.nodeOf[v]; !ok {
					sp.nodeOf[v] = nodeCount
					sp.kind = append(sp.kind, nodeVertex)
					sp.hgVertex = append(sp.hgVertex, v)
					nodeCount++
				}
			}
		})
	}

	net, err := NewNetwork(nodeCount, source, sink)
	if err != nil {
		return nil, err
	}
	sp.Net = net

	for e := range relevant {
		pair := sp.edgeOf[e]
		if _, err := net.AddEdge(pair[0], pair[1], h.EdgeWeight(e)); err != nil {
			return nil, err
		}
		h.ForEachPin(e, func(v int32) {
			id := nodeFor(v)
			if _, err := net.AddEdge(id, pair[0], infCap); err != nil {
				return
			}
			net.AddEdge(pair[1], id, infCap)
		})
	}

	return sp, nil
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
