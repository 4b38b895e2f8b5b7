package rating

import (
	"math/rand"

	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/internal/rng"
)

// Coarsener drives repeated hgraph.Contract calls following an
// ML-style scheme: visit the active vertex set in pseudorandom order
// each pass, contract each unmatched vertex with its best-rated
// eligible neighbour, and stop once the active count drops to the
// configured threshold or a pass contracts nothing (the liveness
// invariant that guarantees termination).
type Coarsener struct {
	cfg Config

	// cache and dirty implement the HeavyLazy variant: a vertex's
	// candidate list is reused across passes until something touching
	// its incident structure invalidates it.
	cache map[int32][]Candidate
	dirty map[int32]bool
}

// NewCoarsener returns a Coarsener for cfg, which must have already
// passed Config.Validate.
func NewCoarsener(cfg Config) *Coarsener {
	return &Coarsener{
		cfg:   cfg,
		cache: make(map[int32][]Candidate),
		dirty: make(map[int32]bool),
	}
}

// Run coarsens h toward k blocks, returning the number of contractions
// performed. rng drives visit order and tie-breaking; nil uses a fixed
// default stream.
func (c *Coarsener) Run(h *hgraph.Hypergraph, k int, r *rand.Rand) (int, error) {
	if err := c.cfg.Validate(); err != nil {
		return 0, err
	}
	stopThreshold := c.cfg.StopThreshold(k)
	matched := make([]bool, h.N())
	total := 0

	activeCount := 0
	for v := 0; v < h.N(); v++ {
		if h.IsActive(int32(v)) {
			activeCount++
		}
	}

	for activeCount > stopThreshold {
		order := rng.PermRange(h.N(), rng.Derive(r, uint64(total)+1))
		for i := range matched {
			matched[i] = false
		}
		contractedThisPass := 0

		maxW := c.cfg.MaxVertexWeight(h.TotalWeight(), k)
		for _, ui := range order {
			u := int32(ui)
			if !h.IsActive(u) || matched[u] {
				continue
			}
			candidates := c.candidatesFor(h, u, maxW)
			v, ok := SelectBest(candidates, matched, c.cfg, r)
			if !ok {
				continue
			}
			if err := h.Contract(u, v); err != nil {
				return total, err
			}
			c.invalidate(h, u, v)
			matched[u] = true
			matched[v] = true
			contractedThisPass++
			total++
			activeCount--
			if activeCount <= stopThreshold {
				break
			}
		}
		if contractedThisPass == 0 {
			break
		}
	}
	return total, nil
}

// candidatesFor returns u's admissible contraction candidates,
// consulting the HeavyLazy cache when the variant and cache state allow.
func (c *Coarsener) candidatesFor(h *hgraph.Hypergraph, u int32, maxW int64) []Candidate {
	if c.cfg.Variant == HeavyLazy {
		if cached, ok := c.cache[u]; ok && !c.dirty[u] {
			return filterLive(h, u, cached, maxW, c.cfg)
		}
	}
	fresh := c.computeCandidates(h, u, maxW)
	if c.cfg.Variant == HeavyLazy {
		c.cache[u] = fresh
		delete(c.dirty, u)
	}
	return fresh
}

// filterLive re-validates a cached candidate list against current
// activity and weight caps without recomputing ratings, matching the
// "defer rescoring until stale" contract of HeavyLazy.
func filterLive(h *hgraph.Hypergraph, u int32, cached []Candidate, maxW int64, cfg Config) []Candidate {
	live := cached[:0:0]
	uw := h.VertexWeight(u)
	for _, c := range cached {
		if !h.IsActive(c.Vertex) {
			continue
		}
		if uw+h.VertexWeight(c.Vertex) > maxW {
			continue
		}
		if !eligible(h, u, c.Vertex, cfg) {
			continue
		}
		live = append(live, c)
	}
	return live
}

func (c *Coarsener) computeCandidates(h *hgraph.Hypergraph, u int32, maxW int64) []Candidate {
	seen := make(map[int32]bool)
	var candidates []Candidate
	uw := h.VertexWeight(u)
	h.ForEachIncidentEdge(u, func(e int32) {
		if h.IsLargeEdge(e) {
			return
		}
		h.ForEachPin(e, func(v int32) {
			if v == u || seen[v] || !h.IsActive(v) {
				return
			}
			seen[v] = true
			if uw+h.VertexWeight(v) > maxW {
				return
			}
			if !eligible(h, u, v, c.cfg) {
				return
			}
			candidates = append(candidates, Candidate{Vertex: v, Rating: Rate(h, u, v, c.cfg)})
		})
	})
	return candidates
}

// invalidate marks every vertex whose candidate list may now be stale
// after contracting v into u: u itself, and every vertex still incident
// to u (its neighbourhood just changed shape).
func (c *Coarsener) invalidate(h *hgraph.Hypergraph, u, v int32) {
	if c.cfg.Variant != HeavyLazy {
		return
	}
	delete(c.cache, v)
	delete(c.dirty, v)
	c.dirty[u] = true
	h.ForEachIncidentEdge(u, func(e int32) {
		h.ForEachPin(e, func(w int32) {
			if w != u {
				c.dirty[w] = true
			}
		})
	})
}
