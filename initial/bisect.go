package initial

import (
	"math/rand"

	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/internal/rng"
)

// bisectNode is one node of the recursive-bisection tree: a set of free
// and fixed vertices still to be split into [loOffset, loOffset+blocks).
type bisectNode struct {
	vertices []int32
	fixed    []int32
	loOffset int32
	blocks   int
}

// RecursiveBisection produces a k-way partition by repeated bisection
//: at each step the
// candidate set is split in two, sized proportionally to how many final
// blocks each half is responsible for, and the two halves recurse
// independently. Each split is scored by a local cut proxy restricted
// to the edges touching the current candidate set, since the rest of
// the hypergraph's eventual blocks are still undecided; the real
// (objective, imbalance) only becomes meaningful once every leaf has
// been resolved, which is when the final labels are committed to h.
func RecursiveBisection(h *hgraph.Hypergraph, k int, cfg Config, r *rand.Rand) error {
	if k < 2 {
		return ErrNoBlocks
	}
	cfg = cfg.normalized()

	free, fixed := splitFixedFree(h)
	finalLabel := make(map[int32]int32, len(free)+len(fixed))

	queue := []bisectNode{{vertices: free, fixed: fixed, loOffset: 0, blocks: k}}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.blocks == 1 {
			for _, v := range node.vertices {
				finalLabel[v] = node.loOffset
			}
			for _, v := range node.fixed {
				finalLabel[v] = node.loOffset
			}
			continue
		}

		leftBlocks := node.blocks / 2
		rightBlocks := node.blocks - leftBlocks
		left, right := bisectOnce(h, node, leftBlocks, rightBlocks, cfg, r)
		queue = append(queue, left, right)
	}

	if err := h.SetK(k); err != nil {
		return err
	}
	for v, b := range finalLabel {
		if err := h.AssignInitialPart(v, b); err != nil {
			return err
		}
	}
	return nil
}

// bisectOnce runs cfg.Runs pool trials splitting node.vertices into two
// sides sized proportionally to leftBlocks/rightBlocks, keeping the
// trial with the lowest local-cut proxy (ties broken by how close each
// side lands to its target weight).
func bisectOnce(h *hgraph.Hypergraph, node bisectNode, leftBlocks, rightBlocks int, cfg Config, r *rand.Rand) (bisectNode, bisectNode) {
	var leftFixed, rightFixed []int32
	baseWeight := make([]int64, 2)
	splitPoint := node.loOffset + int32(leftBlocks)
	for _, v := range node.fixed {
		if h.FixedBlock(v) < splitPoint {
			leftFixed = append(leftFixed, v)
			baseWeight[0] += h.VertexWeight(v)
		} else {
			rightFixed = append(rightFixed, v)
			baseWeight[1] += h.VertexWeight(v)
		}
	}

	var freeWeight int64
	for _, v := range node.vertices {
		freeWeight += h.VertexWeight(v)
	}
	totalWeight := freeWeight + baseWeight[0] + baseWeight[1]
	leftShare := float64(leftBlocks) / float64(node.blocks)
	leftTarget := int64(leftShare * float64(totalWeight))
	target := []int64{leftTarget, totalWeight - leftTarget}

	inSet := make(map[int32]bool, len(node.vertices)+len(node.fixed))
	for _, v := range node.vertices {
		inSet[v] = true
	}
	for _, v := range node.fixed {
		inSet[v] = true
	}

	var bestLabel []int32
	haveBest := false
	var bestScore int64
	var bestBalanceDiff int64

	for trial := 0; trial < cfg.Runs; trial++ {
		kind := cfg.Heuristics[trial%len(cfg.Heuristics)]
		stream := rng.Derive(r, uint64(trial)+1)
		weight := append([]int64(nil), baseWeight...)
		label := assign(kind, h, node.vertices, 2, target, weight, stream)

		sideOf := make(map[int32]int32, len(inSet))
		for _, v := range leftFixed {
			sideOf[v] = 0
		}
		for _, v := range rightFixed {
			sideOf[v] = 1
		}
		for i, v := range node.vertices {
			sideOf[v] = label[i]
		}

		score := localCutMetric(h, inSet, sideOf, cfg.Objective)
		diff := absInt64(weight[0]-target[0]) + absInt64(weight[1]-target[1])

		replace := !haveBest || score < bestScore || (score == bestScore && diff < bestBalanceDiff)
		if replace {
			haveBest = true
			bestScore = score
			bestBalanceDiff = diff
			bestLabel = append([]int32(nil), label...)
		}
	}

	var leftVerts, rightVerts []int32
	for i, v := range node.vertices {
		if bestLabel[i] == 0 {
			leftVerts = append(leftVerts, v)
		} else {
			rightVerts = append(rightVerts, v)
		}
	}

	left := bisectNode{vertices: leftVerts, fixed: leftFixed, loOffset: node.loOffset, blocks: leftBlocks}
	right := bisectNode{vertices: rightVerts, fixed: rightFixed, loOffset: splitPoint, blocks: rightBlocks}
	return left, right
}

// localCutMetric approximates objective restricted to
// hyperedges that touch the candidate set, using only the sides already
// decided (sideOf); pins outside the candidate set are ignored since
// their eventual block is not yet known at this point in the recursion.
func localCutMetric(h *hgraph.Hypergraph, inSet map[int32]bool, sideOf map[int32]int32, objective hgraph.Objective) int64 {
	seen := make(map[int32]bool)
	var total int64
	for v := range inSet {
		h.ForEachIncidentEdge(v, func(e int32) {
			if seen[e] || h.IsLargeEdge(e) {
				return
			}
			seen[e] = true
			sides := map[int32]bool{}
			h.ForEachPin(e, func(u int32) {
				if s, ok := sideOf[u]; ok {
					sides[s] = true
				}
			})
			lambda := len(sides)
			switch objective {
			case hgraph.Km1:
				if lambda > 0 {
					total += h.EdgeWeight(e) * int64(lambda-1)
				}
			default:
				if lambda > 1 {
					total += h.EdgeWeight(e)
				}
			}
		})
	}
	return total
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
