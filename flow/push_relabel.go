package flow

// PushRelabel is a generic (FIFO discharge) push-relabel max-flow
// solver with the gap heuristic: whenever a height value empties out of
// every active or inactive vertex, every vertex strictly above that
// height is immediately relabelled past n, since no valid path to the
// sink can pass through the gap. The generic (non-highest-label)
// variant is used for implementation simplicity, at the cost of a
// weaker asymptotic bound than the highest-label variant.
type PushRelabel struct{}

func (PushRelabel) MaximumFlow(g *Network) (int64, error) {
	n := int(g.N())
	height := make([]int32, n)
	excess := make([]int64, n)
	heightCount := make([]int32, 2*n+1)

	height[g.source] = int32(n)
	heightCount[0] = int32(n - 1)
	heightCount[n] = 1

	// Saturate every edge leaving the source.
	g.ForEachEdge(g.source, func(idx int32, e halfEdge) {
		if e.residual() <= 0 {
			return
		}
		amount := e.residual()
		g.push(g.source, idx, amount)
		excess[e.to] += amount
		excess[g.source] -= amount
	})

	active := make([]bool, n)
	var queue []int32
	for v := 0; v < n; v++ {
		if int32(v) != g.source && int32(v) != g.sink && excess[v] > 0 {
			queue = append(queue, int32(v))
			active[v] = true
		}
	}

	relabel := func(u int32) {
		oldHeight := height[u]
		minHeight := int32(2*n + 1)
		g.ForEachEdge(u, func(_ int32, e halfEdge) {
			if e.residual() > 0 && height[e.to]+1 < minHeight {
				minHeight = height[e.to] + 1
			}
		})
		heightCount[oldHeight]--
		if minHeight < int32(2*n+1) {
			height[u] = minHeight
		} else {
			height[u] = int32(2*n + 1)
		}
		heightCount[height[u]]++
		if heightCount[oldHeight] == 0 && oldHeight < int32(n) {
			// Gap heuristic: nothing else can reach height oldHeight, so
			// every vertex above it is disconnected from the sink and can
			// be pushed straight to the source-side height n.
			for v := 0; v < n; v++ {
				if int32(v) != u && height[v] > oldHeight && height[v] < int32(n) {
					heightCount[height[v]]--
					height[v] = int32(n) + oldHeight
					heightCount[height[v]]++
				}
			}
		}
	}

	discharge := func(u int32) {
		for excess[u] > 0 {
			pushed := false
			g.ForEachEdge(u, func(idx int32, e halfEdge) {
				if excess[u] <= 0 || e.residual() <= 0 || height[u] != height[e.to]+1 {
					return
				}
				amount := e.residual()
				if amount > excess[u] {
					amount = excess[u]
				}
				g.push(u, idx, amount)
				excess[u] -= amount
				if excess[e.to] == 0 && e.to != g.source && e.to != g.sink && !active[e.to] {
					active[e.to] = true
					queue = append(queue, e.to)
				}
				excess[e.to] += amount
				pushed = true
			})
			if excess[u] > 0 {
				if !pushed {
					relabel(u)
				}
				if height[u] >= int32(2*n) {
					break
				}
			}
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		active[u] = false
		discharge(u)
		if excess[u] > 0 && height[u] < int32(2*n) {
			active[u] = true
			queue = append(queue, u)
		}
	}

	return excess[g.sink], nil
}
