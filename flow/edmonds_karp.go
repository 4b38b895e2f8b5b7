package flow

// EdmondsKarp finds shortest (fewest-edges) augmenting paths by BFS and
// saturates one per iteration, adapted from float64 capacities to this
// package's integer Network.
type EdmondsKarp struct{}

func (EdmondsKarp) MaximumFlow(g *Network) (int64, error) {
	n := g.N()
	var total int64
	for {
		parentEdge := make([]int32, n)
		parentVertex := make([]int32, n)
		visited := make([]bool, n)
		for i := range parentEdge {
			parentEdge[i] = -1
			parentVertex[i] = -1
		}
		visited[g.source] = true
		queue := []int32{g.source}
		for len(queue) > 0 && !visited[g.sink] {
			u := queue[0]
			queue = queue[1:]
			g.ForEachEdge(u, func(idx int32, e halfEdge) {
				if visited[e.to] || e.residual() <= 0 {
					return
				}
				visited[e.to] = true
				parentVertex[e.to] = u
				parentEdge[e.to] = idx
				queue = append(queue, e.to)
			})
		}
		if !visited[g.sink] {
			break
		}

		bottleneck := int64(-1)
		for v := g.sink; v != g.source; v = parentVertex[v] {
			r := g.Residual(parentVertex[v], parentEdge[v])
			if bottleneck < 0 || r < bottleneck {
				bottleneck = r
			}
		}
		for v := g.sink; v != g.source; v = parentVertex[v] {
			g.push(parentVertex[v], parentEdge[v], bottleneck)
		}
		total += bottleneck
	}
	return total, nil
}
