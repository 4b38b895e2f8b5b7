package fm

import (
	"fmt"
	"math/rand"

	"github.com/partitionlab/gohypart/gainpq"
	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/rating"
)

// Refiner runs one FM local-search pass per Run call.
// Stateless between calls: all mutable search state lives on the stack
// of a single Run.
type Refiner struct {
	cfg Config
}

// NewRefiner returns a Refiner for cfg.
func NewRefiner(cfg Config) *Refiner {
	return &Refiner{cfg: cfg}
}

type moveRecord struct {
	v, from, to int32
	gain        int64
}

// Run performs one FM pass over h, returning how many of the moves it
// tried survive after best-prefix rollback.
func (r *Refiner) Run(h *hgraph.Hypergraph, rng *rand.Rand) (Result, error) {
	k := h.K()
	if k <= 0 {
		return Result{}, ErrNoBlocksConfigured
	}

	pq := gainpq.New(int32(k), true, rng)
	queued := make([][]bool, h.N())
	for v := range queued {
		queued[v] = make([]bool, k)
	}
	locked := make([]bool, h.N())

	seedVertex := func(v int32) {
		if locked[v] || h.IsFixed(v) || !h.IsActive(v) {
			return
		}
		if !IsBorder(h, v) {
			return
		}
		for _, to := range targetBlocks(h, v, r.cfg.Mode, r.cfg.Pair) {
			if queued[v][to] {
				continue
			}
			if err := pq.Insert(v, to, ComputeGain(h, v, to, r.cfg.Objective)); err == nil {
				queued[v][to] = true
			}
		}
	}
	for v := int32(0); v < int32(h.N()); v++ {
		seedVertex(v)
	}
	for b := int32(0); b < int32(k); b++ {
		pq.EnablePart(b)
	}

	maxWeight := h.MaxBlockWeight(r.cfg.Epsilon)
	stopper := rating.NewAdaptiveStopper(r.cfg.Alpha)

	var moves []moveRecord
	var cum int64
	bestCum := int64(0)
	bestIdx := 0
	bestImbalance := h.Imbalance()
	fruitless := 0

	maxMoves := r.cfg.MaxMoves
	if maxMoves <= 0 {
		maxMoves = h.N() * k
	}

	for step := 0; step < maxMoves; step++ {
		if pq.Empty() {
			break
		}
		v, gain, to, err := pq.DeleteMax()
		if err != nil {
			break
		}
		queued[v][to] = false
		if locked[v] {
			continue
		}
		from := h.Part(v)
		if from == to {
			continue
		}
		if h.BlockWeight(to)+h.VertexWeight(v) > maxWeight {
			continue
		}

		if err := h.ChangeNodePart(v, from, to); err != nil {
			return Result{}, fmt.Errorf("fm.Run: %w", err)
		}
		locked[v] = true
		for b := int32(0); b < int32(k); b++ {
			if queued[v][b] {
				_ = pq.Remove(v, b)
				queued[v][b] = false
			}
		}

		cum += gain
		moves = append(moves, moveRecord{v: v, from: from, to: to, gain: gain})
		stopper.Observe(float64(gain))
		if gain > 0 {
			fruitless = 0
		} else {
			fruitless++
		}

		imbalance := h.Imbalance()
		if cum > bestCum || (cum == bestCum && imbalance < bestImbalance) {
			bestCum = cum
			bestIdx = len(moves)
			bestImbalance = imbalance
		}

		touched := map[int32]bool{}
		h.ForEachIncidentEdge(v, func(e int32) {
			if h.IsLargeEdge(e) {
				return
			}
			h.ForEachPin(e, func(u int32) {
				if u == v || locked[u] || touched[u] || h.IsFixed(u) {
					return
				}
				touched[u] = true
			})
		})
		for u := range touched {
			if !IsBorder(h, u) {
				for b := int32(0); b < int32(k); b++ {
					if queued[u][b] {
						_ = pq.Remove(u, b)
						queued[u][b] = false
					}
				}
				continue
			}
			for _, tb := range targetBlocks(h, u, r.cfg.Mode, r.cfg.Pair) {
				g := ComputeGain(h, u, tb, r.cfg.Objective)
				if queued[u][tb] {
					_ = pq.UpdateKey(u, tb, g)
				} else if pq.Insert(u, tb, g) == nil {
					queued[u][tb] = true
				}
			}
		}

		stop := false
		switch r.cfg.Rule {
		case Adaptive:
			stop = stopper.ShouldStop(fruitless)
		default:
			stop = fruitless > r.cfg.FruitlessLimit
		}
		if stop {
			break
		}
	}

	for i := len(moves) - 1; i >= bestIdx; i-- {
		m := moves[i]
		if err := h.ChangeNodePart(m.v, m.to, m.from); err != nil {
			return Result{}, fmt.Errorf("fm.Run: rollback: %w", err)
		}
	}

	return Result{
		MovesApplied:    bestIdx,
		MovesRolledBack: len(moves) - bestIdx,
		ObjectiveDelta:  bestCum,
	}, nil
}
