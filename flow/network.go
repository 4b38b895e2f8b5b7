package flow

import "fmt"

// halfEdge is one direction of a forward/reverse residual edge pair.
type halfEdge struct {
	to   int32
	cap  int64
	flow int64
	rev  int32 // index into graph[to] of the paired reverse half-edge
}

// residual returns the remaining capacity along this half-edge.
func (h halfEdge) residual() int64 { return h.cap - h.flow }

// Network is a directed residual graph with a designated source and
// sink, built fresh for each block-pair subproblem. Every AddEdge call
// adds a matching zero-capacity reverse edge, so
// solvers only ever need to push flow along halfEdge.residual().
type Network struct {
	graph        [][]halfEdge
	source, sink int32
}

// NewNetwork returns an n-vertex network with no edges yet.
func NewNetwork(n int32, source, sink int32) (*Network, error) {
	if source < 0 || source >= n {
		return nil, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkNotFound
	}
	return &Network{
		graph:  make([][]halfEdge, n),
		source: source,
		sink:   sink,
	}, nil
}

// N returns the number of vertices in the network.
func (g *Network) N() int32 { return int32(len(g.graph)) }

// Source and Sink return the network's terminals.
func (g *Network) Source() int32 { return g.source }
func (g *Network) Sink() int32   { return g.sink }

// AddEdge adds a directed edge u->v with the given capacity (and an
// implicit zero-capacity reverse edge v->u for residual bookkeeping),
// returning the index of the forward half-edge within graph[u] for
// later capacity lookups. Repeated calls for the same (u,v) add
// parallel edges rather than summing capacity.
func (g *Network) AddEdge(u, v int32, cap int64) (int32, error) {
	if cap < 0 {
		return 0, fmt.Errorf("flow.AddEdge: %w", EdgeError{From: u, To: v, Cap: cap})
	}
	fi := int32(len(g.graph[u]))
	ri := int32(len(g.graph[v]))
	g.graph[u] = append(g.graph[u], halfEdge{to: v, cap: cap, rev: ri})
	g.graph[v] = append(g.graph[v], halfEdge{to: u, cap: 0, rev: fi})
	return fi, nil
}

// push sends delta units of flow along graph[u][idx], updating both the
// forward edge and its paired reverse edge.
func (g *Network) push(u int32, idx int32, delta int64) {
	e := &g.graph[u][idx]
	e.flow += delta
	rev := &g.graph[e.to][e.rev]
	rev.flow -= delta
}

// Residual returns the remaining capacity of graph[u][idx].
func (g *Network) Residual(u int32, idx int32) int64 {
	return g.graph[u][idx].residual()
}

// ForEachEdge calls fn for every half-edge out of u, passing its index
// (for use with Residual/push) and the edge itself.
func (g *Network) ForEachEdge(u int32, fn func(idx int32, e halfEdge)) {
	for i, e := range g.graph[u] {
		fn(int32(i), e)
	}
}

// TotalOutflow sums the flow pushed out of the source across all its
// edges, the network's realised maximum flow value once a solver has
// run.
func (g *Network) TotalOutflow() int64 {
	var total int64
	for _, e := range g.graph[g.source] {
		if e.flow > 0 {
			total += e.flow
		}
	}
	return total
}

// Reset zeroes every edge's flow, letting a Network be reused across
// the adaptive-α re-run loop without rebuilding the subproblem from
// scratch.
func (g *Network) Reset() {
	for u := range g.graph {
		for i := range g.graph[u] {
			g.graph[u][i].flow = 0
		}
	}
}
