package rating

import (
	"math"

	"github.com/partitionlab/gohypart/hgraph"
)

// sharedEdges calls fn once for every hyperedge incident to both u and
// v, skipping edges beyond h's cmaxnet cutoff. Iterates the smaller of
// u's and v's incidence lists to keep the common case cheap.
func sharedEdges(h *hgraph.Hypergraph, u, v int32, fn func(e int32)) {
	small, big := u, v
	if h.Degree(v) < h.Degree(u) {
		small, big = v, u
	}
	h.ForEachIncidentEdge(small, func(e int32) {
		if h.IsLargeEdge(e) {
			return
		}
		found := false
		h.ForEachPin(e, func(p int32) {
			if p == big {
				found = true
			}
		})
		if found {
			fn(e)
		}
	})
}

// HeavyEdgeRating implements rate(u,v) = Σ ω(e)/(|Pins[e]|-1) over
// shared hyperedges, normalised by √(c(u)·c(v)).
func HeavyEdgeRating(h *hgraph.Hypergraph, u, v int32) float64 {
	var sum float64
	sharedEdges(h, u, v, func(e int32) {
		size := h.EdgeSize(e)
		if size <= 1 {
			return
		}
		sum += float64(h.EdgeWeight(e)) / float64(size-1)
	})
	if sum == 0 {
		return 0
	}
	denom := math.Sqrt(float64(h.VertexWeight(u)) * float64(h.VertexWeight(v)))
	if denom == 0 {
		return 0
	}
	return sum / denom
}

// EdgeFrequencyRating is HeavyEdgeRating plus a learned per-hyperedge
// frequency term, additively blended in. A nil or
// empty freq behaves exactly like HeavyEdgeRating.
func EdgeFrequencyRating(h *hgraph.Hypergraph, u, v int32, freq map[int]float64) float64 {
	base := HeavyEdgeRating(h, u, v)
	if len(freq) == 0 {
		return base
	}
	var bonus float64
	sharedEdges(h, u, v, func(e int32) {
		bonus += freq[int(e)]
	})
	return base + bonus
}

// Rate scores (u, v) using cfg's configured Function and Penalty.
func Rate(h *hgraph.Hypergraph, u, v int32, cfg Config) float64 {
	var r float64
	switch cfg.Function {
	case EdgeFrequency:
		r = EdgeFrequencyRating(h, u, v, cfg.EdgeFrequency)
	default:
		r = HeavyEdgeRating(h, u, v)
	}
	if cfg.Penalty == MultiplicativePenalty {
		heaviest := h.VertexWeight(u)
		if w := h.VertexWeight(v); w > heaviest {
			heaviest = w
		}
		if heaviest > 0 {
			r /= float64(heaviest)
		}
	}
	return r
}

// eligible reports whether contracting u into v is admissible under
// cfg's community and fixed-vertex policies, independent of size caps.
func eligible(h *hgraph.Hypergraph, u, v int32, cfg Config) bool {
	if cfg.RespectCommunities {
		cu, cv := h.Community(u), h.Community(v)
		if cu != -1 && cv != -1 && cu != cv {
			return false
		}
	}
	uFixed, vFixed := h.IsFixed(u), h.IsFixed(v)
	switch cfg.FixedVertexPolicy {
	case FreeOnly:
		if uFixed || vFixed {
			return false
		}
	case Allowed:
		if uFixed && vFixed && h.FixedBlock(u) != h.FixedBlock(v) {
			return false
		}
	case EquivalentOnly:
		if uFixed && vFixed && h.FixedBlock(u) != h.FixedBlock(v) {
			return false
		}
		// a single fixed side is fine; two different fixed blocks never are.
	}
	return true
}
