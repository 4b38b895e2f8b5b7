package flow

// treeLabel is which of the two search trees a vertex currently
// belongs to during Boykov-Kolmogorov's growth phase.
type treeLabel uint8

const (
	treeFree treeLabel = iota
	treeS
	treeT
)

// pathEdge identifies one residual edge (graph[from][idx]) lying on an
// augmenting path, always oriented in the source->sink direction.
type pathEdge struct {
	from int32
	idx  int32
}

// BoykovKolmogorov implements the two-tree augmenting-path algorithm
// (Boykov & Kolmogorov, 2004): grow a source tree S and a sink tree T
// simultaneously; when growth finds an admissible edge connecting the
// two trees, augment along the S-root..edge..T-root path; any tree edge
// the augmentation saturates orphans its child, which is either
// re-parented within its own tree or evicted (cascading to its
// descendants). Repeats until neither tree can grow further.
type BoykovKolmogorov struct{}

type bkState struct {
	g      *Network
	tree   []treeLabel
	parent []int32 // tree parent vertex, or -1 for a root/free node
	edge   []pathEdge
	active []bool
	queue  []int32
}

func newBKState(g *Network) *bkState {
	n := int(g.N())
	s := &bkState{
		g:      g,
		tree:   make([]treeLabel, n),
		parent: make([]int32, n),
		edge:   make([]pathEdge, n),
		active: make([]bool, n),
	}
	for i := range s.parent {
		s.parent[i] = -1
	}
	s.tree[g.source] = treeS
	s.tree[g.sink] = treeT
	s.active[g.source], s.active[g.sink] = true, true
	s.queue = append(s.queue, g.source, g.sink)
	return s
}

func (BoykovKolmogorov) MaximumFlow(g *Network) (int64, error) {
	st := newBKState(g)
	var total int64
	for {
		meet, foundEdge, ok := st.grow()
		if !ok {
			break
		}
		total += st.augment(meet, foundEdge)
	}
	return total, nil
}

// grow drains the active queue, returning the meeting vertex on the
// opposite tree and the connecting edge the moment one is found.
// meet's own tree is inferred by the caller from which side the search
// was on: augment walks both parent[] chains regardless.
func (st *bkState) grow() (meetOther int32, connecting pathEdge, ok bool) {
	for len(st.queue) > 0 {
		v := st.queue[0]
		st.queue = st.queue[1:]
		if !st.active[v] {
			continue
		}
		switch st.tree[v] {
		case treeS:
			var found bool
			var meet int32
			var e pathEdge
			st.g.ForEachEdge(v, func(idx int32, he halfEdge) {
				if found || he.residual() <= 0 {
					return
				}
				x := he.to
				switch st.tree[x] {
				case treeFree:
					st.tree[x] = treeS
					st.parent[x] = v
					st.edge[x] = pathEdge{from: v, idx: idx}
					st.active[x] = true
					st.queue = append(st.queue, x)
				case treeT:
					found = true
					meet = x
					e = pathEdge{from: v, idx: idx}
				}
			})
			if found {
				st.active[v] = true
				st.queue = append(st.queue, v)
				return meet, e, true
			}
			st.active[v] = false
		case treeT:
			var found bool
			var meet int32
			var e pathEdge
			st.g.ForEachEdge(v, func(idx int32, he halfEdge) {
				if found {
					return
				}
				x := he.to
				revResidual := st.g.graph[x][he.rev].residual()
				if revResidual <= 0 {
					return
				}
				switch st.tree[x] {
				case treeFree:
					st.tree[x] = treeT
					st.parent[x] = v
					st.edge[x] = pathEdge{from: x, idx: he.rev}
					st.active[x] = true
					st.queue = append(st.queue, x)
				case treeS:
					found = true
					meet = x
					e = pathEdge{from: x, idx: he.rev}
				}
			})
			if found {
				st.active[v] = true
				st.queue = append(st.queue, v)
				return meet, e, true
			}
			st.active[v] = false
		}
	}
	return 0, pathEdge{}, false
}

// augment pushes the bottleneck flow along the S-root..meet path found
// by grow, saturating at least the connecting edge, then adopts every
// orphaned child.
func (st *bkState) augment(meetOther int32, connecting pathEdge) int64 {
	// meetOther sits on the tree opposite to whichever side found it;
	// its own edge[] entry (if any) still points the right way because
	// we stored edges in source->sink orientation regardless of tree.
	var sChain, tChain []pathEdge

	// Walk from the S-side endpoint of the connecting edge up to source.
	sEnd := connecting.from
	for v := sEnd; st.parent[v] != -1; v = st.parent[v] {
		sChain = append(sChain, st.edge[v])
	}
	// Walk from the T-side endpoint (the other end of connecting) to sink.
	tEnd := st.g.graph[connecting.from][connecting.idx].to
	for v := tEnd; st.parent[v] != -1; v = st.parent[v] {
		tChain = append(tChain, st.edge[v])
	}
	_ = meetOther

	bottleneck := st.g.Residual(connecting.from, connecting.idx)
	for _, pe := range sChain {
		if r := st.g.Residual(pe.from, pe.idx); r < bottleneck {
			bottleneck = r
		}
	}
	for _, pe := range tChain {
		if r := st.g.Residual(pe.from, pe.idx); r < bottleneck {
			bottleneck = r
		}
	}
	if bottleneck <= 0 {
		return 0
	}

	st.g.push(connecting.from, connecting.idx, bottleneck)
	var orphans []int32
	for _, pe := range sChain {
		st.g.push(pe.from, pe.idx, bottleneck)
	}
	for _, pe := range tChain {
		st.g.push(pe.from, pe.idx, bottleneck)
	}

	// Any tree edge now saturated orphans its child.
	n := int(st.g.N())
	for v := 0; v < n; v++ {
		if st.parent[v] == -1 {
			continue
		}
		pe := st.edge[v]
		if st.g.Residual(pe.from, pe.idx) == 0 {
			st.parent[v] = -1
			orphans = append(orphans, int32(v))
		}
	}
	st.adopt(orphans)
	return bottleneck
}

// adopt tries to find each orphan a new valid parent in its own tree;
// failing that, evicts it (and cascades to its former children).
func (st *bkState) adopt(orphans []int32) {
	n := int(st.g.N())
	for len(orphans) > 0 {
		o := orphans[0]
		orphans = orphans[1:]
		if st.tree[o] == treeFree {
			continue
		}
		if o == st.g.source || o == st.g.sink {
			st.parent[o] = -1
			continue
		}
		if st.hasRootPath(o) {
			continue
		}
		if newParent, e, ok := st.findNewParent(o); ok {
			st.parent[o] = newParent
			st.edge[o] = e
			continue
		}
		// No valid parent: evict o, re-activate its same-tree neighbours
		// so they can grow back into it, and cascade to its children.
		tree := st.tree[o]
		st.g.ForEachEdge(o, func(_ int32, he halfEdge) {
			if x := he.to; st.tree[x] == tree && !st.active[x] {
				st.active[x] = true
				st.queue = append(st.queue, x)
			}
		})
		st.tree[o] = treeFree
		st.parent[o] = -1
		st.active[o] = false
		for v := 0; v < n; v++ {
			if int32(v) != o && st.parent[v] == o {
				orphans = append(orphans, int32(v))
			}
		}
	}
}

// hasRootPath reports whether o's current parent chain reaches a root
// (source or sink) without cycling back through o itself.
func (st *bkState) hasRootPath(o int32) bool {
	seen := map[int32]bool{o: true}
	v := st.parent[o]
	for v != -1 {
		if seen[v] {
			return false
		}
		if v == st.g.source || v == st.g.sink {
			return true
		}
		seen[v] = true
		v = st.parent[v]
	}
	return false
}

// findNewParent looks for a same-tree neighbour reachable from o by an
// admissible edge oriented toward o's root, whose own chain already
// reaches a root.
func (st *bkState) findNewParent(o int32) (int32, pathEdge, bool) {
	if st.tree[o] == treeS {
		var result int32
		var edge pathEdge
		found := false
		st.g.ForEachEdge(o, func(idx int32, he halfEdge) {
			if found {
				return
			}
			x := he.to
			rev := st.g.graph[x][he.rev]
			// o's parent must be reachable via x->o admissible (S-tree:
			// path flows source->o so parent p has p->o admissible; here
			// we want a neighbour x that could adopt o as x's own child
			// reachable from source, i.e. x->o admissible).
			if st.tree[x] == treeS && rev.residual() > 0 && x != o && st.hasRootPath(x) {
				found = true
				result = x
				edge = pathEdge{from: x, idx: he.rev}
			}
		})
		return result, edge, found
	}
	var result int32
	var edge pathEdge
	found := false
	st.g.ForEachEdge(o, func(idx int32, he halfEdge) {
		if found {
			return
		}
		x := he.to
		if st.tree[x] == treeT && he.residual() > 0 && x != o && st.hasRootPath(x) {
			found = true
			result = x
			edge = pathEdge{from: o, idx: idx}
		}
	})
	return result, edge, found
}
