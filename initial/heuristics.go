package initial

import (
	"math/rand"
	"sort"

	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/internal/rng"
)

// Heuristic selects one member of the initial-partitioning pool
//.
type Heuristic int

const (
	Random Heuristic = iota
	BFSGrowing
	GreedyHyperedge
	LabelPropagation
)

func (h Heuristic) String() string {
	switch h {
	case Random:
		return "random"
	case BFSGrowing:
		return "bfs_growing"
	case GreedyHyperedge:
		return "greedy_hyperedge"
	case LabelPropagation:
		return "label_propagation"
	default:
		return "unknown"
	}
}

// labelPropagationRounds bounds how many sweeps assignLabelPropagation
// performs; small since the candidate set at the coarsest level is
// already tiny.
const labelPropagationRounds = 8

// assign dispatches to one pool heuristic. vertices are the free
// (non-fixed) candidates; blocks is the number of sides to split into
// (2 for a bisection step, k for direct k-way); target[b] is the
// desired final weight of side b; weight[b] is mutated in place,
// starting from whatever weight fixed vertices already contributed to
// side b.
func assign(kind Heuristic, h *hgraph.Hypergraph, vertices []int32, blocks int, target, weight []int64, r *rand.Rand) []int32 {
	switch kind {
	case BFSGrowing:
		return assignBFSGrowing(vertices, h, blocks, target, weight, r)
	case GreedyHyperedge:
		return assignGreedyHyperedge(vertices, h, blocks, target, weight, r)
	case LabelPropagation:
		return assignLabelPropagation(vertices, h, blocks, target, weight, r)
	default:
		return assignRandom(vertices, h, blocks, target, weight, r)
	}
}

// room returns how much weight side b can still absorb before reaching
// its target; negative once over target.
func room(weight, target []int64, b int32) int64 { return target[b] - weight[b] }

// roomiestBlock picks the side with the most remaining room, breaking
// ties uniformly at random.
func roomiestBlock(weight, target []int64, blocks int, r *rand.Rand) int32 {
	best := int32(0)
	bestRoom := room(weight, target, 0)
	tied := []int32{0}
	for b := int32(1); b < int32(blocks); b++ {
		rm := room(weight, target, b)
		switch {
		case rm > bestRoom:
			bestRoom = rm
			best = b
			tied = []int32{b}
		case rm == bestRoom:
			tied = append(tied, b)
		}
	}
	if len(tied) == 1 || r == nil {
		return best
	}
	return tied[r.Intn(len(tied))]
}

// assignRandom walks vertices in pseudorandom order, each time dropping
// the vertex into whichever side currently has the most room — a
// balance-aware random assignment rather than a pure coin flip, so it
// stays a useful pool member instead of a near-certain loser.
func assignRandom(vertices []int32, h *hgraph.Hypergraph, blocks int, target, weight []int64, r *rand.Rand) []int32 {
	label := make([]int32, len(vertices))
	order := rng.PermRange(len(vertices), r)
	for _, idx := range order {
		v := vertices[idx]
		b := roomiestBlock(weight, target, blocks, r)
		label[idx] = b
		weight[b] += h.VertexWeight(v)
	}
	return label
}

// assignBFSGrowing grows `blocks` regions outward from random seeds via
// BFS over shared hyperedges, round-robin across regions so no single
// region runs away with the whole candidate set; vertices the BFS never
// reaches (disconnected within the candidate set) fall back to
// roomiestBlock.
func assignBFSGrowing(vertices []int32, h *hgraph.Hypergraph, blocks int, target, weight []int64, r *rand.Rand) []int32 {
	n := len(vertices)
	label := make([]int32, n)
	if n == 0 {
		return label
	}
	inSet := make(map[int32]bool, n)
	pos := make(map[int32]int32, n)
	for i, v := range vertices {
		inSet[v] = true
		pos[v] = int32(i)
	}
	assigned := make([]bool, n)

	seeds := rng.PermRange(n, r)
	queues := make([][]int32, blocks)
	for b := 0; b < blocks && b < n; b++ {
		queues[b] = append(queues[b], vertices[seeds[b]])
	}

	remaining := n
	for remaining > 0 {
		progressed := false
		for b := 0; b < blocks; b++ {
			for len(queues[b]) > 0 {
				v := queues[b][0]
				queues[b] = queues[b][1:]
				p := pos[v]
				if assigned[p] {
					continue
				}
				if room(weight, target, int32(b)) < 0 {
					break
				}
				assigned[p] = true
				label[p] = int32(b)
				weight[b] += h.VertexWeight(v)
				remaining--
				progressed = true
				h.ForEachIncidentEdge(v, func(e int32) {
					if h.IsLargeEdge(e) {
						return
					}
					h.ForEachPin(e, func(u int32) {
						if u == v || !inSet[u] || assigned[pos[u]] {
							return
						}
						queues[b] = append(queues[b], u)
					})
				})
				break
			}
		}
		if !progressed {
			for i, v := range vertices {
				if assigned[i] {
					continue
				}
				b := roomiestBlock(weight, target, blocks, r)
				assigned[i] = true
				label[i] = b
				weight[b] += h.VertexWeight(v)
				remaining--
			}
		}
	}
	return label
}

// assignGreedyHyperedge processes hyperedges heaviest-first, dropping
// each edge's still-unassigned candidate pins onto whichever side
// already holds the most of that edge's pins (so the edge has a better
// chance of landing entirely on one side), falling back to roomiestBlock
// for ties and for isolated vertices no edge ever claims.
func assignGreedyHyperedge(vertices []int32, h *hgraph.Hypergraph, blocks int, target, weight []int64, r *rand.Rand) []int32 {
	n := len(vertices)
	label := make([]int32, n)
	for i := range label {
		label[i] = -1
	}
	if n == 0 {
		return label
	}
	inSet := make(map[int32]bool, n)
	pos := make(map[int32]int32, n)
	for i, v := range vertices {
		inSet[v] = true
		pos[v] = int32(i)
	}

	edgeSet := map[int32]bool{}
	for _, v := range vertices {
		h.ForEachIncidentEdge(v, func(e int32) {
			if !h.IsLargeEdge(e) {
				edgeSet[e] = true
			}
		})
	}
	edges := make([]int32, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if h.EdgeWeight(edges[i]) != h.EdgeWeight(edges[j]) {
			return h.EdgeWeight(edges[i]) > h.EdgeWeight(edges[j])
		}
		return edges[i] < edges[j]
	})

	assignedCount := 0
	for _, e := range edges {
		counts := make([]int64, blocks)
		var unassigned []int32
		h.ForEachPin(e, func(v int32) {
			if !inSet[v] {
				return
			}
			p := pos[v]
			if label[p] >= 0 {
				counts[label[p]]++
			} else {
				unassigned = append(unassigned, v)
			}
		})
		if len(unassigned) == 0 {
			continue
		}
		b := int32(0)
		bestCount := counts[0]
		for bb := int32(1); bb < int32(blocks); bb++ {
			if counts[bb] > bestCount {
				bestCount = counts[bb]
				b = bb
			}
		}
		if bestCount == 0 {
			b = roomiestBlock(weight, target, blocks, r)
		}
		for _, v := range unassigned {
			p := pos[v]
			if label[p] >= 0 {
				continue
			}
			targetBlock := b
			if room(weight, target, b) < 0 {
				targetBlock = roomiestBlock(weight, target, blocks, r)
			}
			label[p] = targetBlock
			weight[targetBlock] += h.VertexWeight(v)
			assignedCount++
		}
	}
	if assignedCount < n {
		for i, v := range vertices {
			if label[i] >= 0 {
				continue
			}
			b := roomiestBlock(weight, target, blocks, r)
			label[i] = b
			weight[b] += h.VertexWeight(v)
		}
	}
	return label
}

// assignLabelPropagation seeds a balanced random assignment, then runs
// a few sweeps where each vertex adopts the side its neighbours (shared
// hyperedges, weighted by ω(e)/(|Pins[e]|-1) as in rating.HeavyEdgeRating)
// vote for most, subject to the target side still having room.
func assignLabelPropagation(vertices []int32, h *hgraph.Hypergraph, blocks int, target, weight []int64, r *rand.Rand) []int32 {
	n := len(vertices)
	if n == 0 {
		return nil
	}
	label := assignRandom(vertices, h, blocks, target, weight, r)

	inSet := make(map[int32]bool, n)
	pos := make(map[int32]int32, n)
	for i, v := range vertices {
		inSet[v] = true
		pos[v] = int32(i)
	}

	for round := 0; round < labelPropagationRounds; round++ {
		order := rng.PermRange(n, rng.Derive(r, uint64(round)+1))
		for _, idx := range order {
			v := vertices[idx]
			votes := make([]float64, blocks)
			h.ForEachIncidentEdge(v, func(e int32) {
				if h.IsLargeEdge(e) {
					return
				}
				size := h.EdgeSize(e)
				if size <= 1 {
					return
				}
				share := float64(h.EdgeWeight(e)) / float64(size-1)
				h.ForEachPin(e, func(u int32) {
					if u == v || !inSet[u] {
						return
					}
					votes[label[pos[u]]] += share
				})
			})
			cur := label[idx]
			best := cur
			bestVote := votes[cur]
			for b := int32(0); b < int32(blocks); b++ {
				if b == cur || votes[b] <= bestVote {
					continue
				}
				if weight[b]+h.VertexWeight(v) > target[b] {
					continue
				}
				bestVote = votes[b]
				best = b
			}
			if best != cur {
				weight[cur] -= h.VertexWeight(v)
				weight[best] += h.VertexWeight(v)
				label[idx] = best
			}
		}
	}
	return label
}
