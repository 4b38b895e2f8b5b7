package initial

import (
	"math/rand"

	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/internal/rng"
)

// Config parameterises the initial-partitioning pool (the CLI's `i-*`
// flags).
type Config struct {
	Heuristics []Heuristic
	// Runs is the number of pool trials per call (`i-runs`); 0 means one
	// trial per configured heuristic.
	Runs      int
	Objective hgraph.Objective
	Epsilon   float64
}

// DefaultConfig runs the full pool, 20 trials, cut objective.
func DefaultConfig() Config {
	return Config{
		Heuristics: []Heuristic{Random, BFSGrowing, GreedyHyperedge, LabelPropagation},
		Runs:       20,
		Objective:  hgraph.Cut,
		Epsilon:    0.03,
	}
}

func (c Config) normalized() Config {
	if len(c.Heuristics) == 0 {
		c.Heuristics = DefaultConfig().Heuristics
	}
	if c.Runs <= 0 {
		c.Runs = len(c.Heuristics)
	}
	return c
}

func splitFixedFree(h *hgraph.Hypergraph) (free, fixed []int32) {
	for v := int32(0); v < int32(h.N()); v++ {
		if !h.IsActive(v) {
			continue
		}
		if h.IsFixed(v) {
			fixed = append(fixed, v)
		} else {
			free = append(free, v)
		}
	}
	return free, fixed
}

func assignFixedVertices(h *hgraph.Hypergraph, fixed []int32) error {
	for _, v := range fixed {
		if err := h.AssignInitialPart(v, h.FixedBlock(v)); err != nil {
			return err
		}
	}
	return nil
}

// DirectKWay produces one flat k-way partition of h's currently active
// vertices. Fixed vertices are committed first and never moved by any
// trial. The best feasible trial is kept; if no trial is feasible, the
// one with the lowest objective (then the lowest imbalance) is kept.
func DirectKWay(h *hgraph.Hypergraph, k int, cfg Config, r *rand.Rand) error {
	if k < 2 {
		return ErrNoBlocks
	}
	cfg = cfg.normalized()
	if err := h.SetK(k); err != nil {
		return err
	}

	free, fixed := splitFixedFree(h)
	fixedWeight := make([]int64, k)
	for _, v := range fixed {
		fixedWeight[h.FixedBlock(v)] += h.VertexWeight(v)
	}
	total := h.TotalWeight()
	perfect := (total + int64(k) - 1) / int64(k)
	target := make([]int64, k)
	for b := range target {
		target[b] = perfect
	}

	var bestLabel []int32
	haveBest := false
	var bestFeasible bool
	var bestObjective int64
	var bestImbalance float64
	var bestModularity float64
	bestModularityKnown := false

	for trial := 0; trial < cfg.Runs; trial++ {
		kind := cfg.Heuristics[trial%len(cfg.Heuristics)]
		stream := rng.Derive(r, uint64(trial)+1)
		weight := append([]int64(nil), fixedWeight...)
		label := assign(kind, h, free, k, target, weight, stream)

		h.ResetParts()
		if err := assignFixedVertices(h, fixed); err != nil {
			return err
		}
		for i, v := range free {
			if err := h.AssignInitialPart(v, label[i]); err != nil {
				return err
			}
		}

		objective := h.Evaluate(cfg.Objective)
		imbalance := h.Imbalance()
		feasible := h.IsBalanced(cfg.Epsilon)

		tiedOnQuality := haveBest && feasible == bestFeasible && objective == bestObjective && imbalance == bestImbalance
		var modularity float64
		if tiedOnQuality {
			modularity = modularityScore(h, free, label, fixed, k)
			if !bestModularityKnown {
				bestModularity = modularityScore(h, free, bestLabel, fixed, k)
				bestModularityKnown = true
			}
		}

		replace := !haveBest ||
			(feasible && !bestFeasible) ||
			(feasible == bestFeasible && (objective < bestObjective ||
				(objective == bestObjective && imbalance < bestImbalance) ||
				(tiedOnQuality && modularity > bestModularity)))
		if replace {
			haveBest = true
			bestFeasible = feasible
			bestObjective = objective
			bestImbalance = imbalance
			if tiedOnQuality {
				bestModularity = modularity
			} else {
				bestModularity = 0
			}
			bestModularityKnown = tiedOnQuality
			bestLabel = append([]int32(nil), label...)
		}
	}

	if !haveBest {
		return ErrInfeasible
	}

	h.ResetParts()
	if err := assignFixedVertices(h, fixed); err != nil {
		return err
	}
	for i, v := range free {
		if err := h.AssignInitialPart(v, bestLabel[i]); err != nil {
			return err
		}
	}
	return nil
}
