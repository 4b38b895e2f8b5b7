package flow

import (
	"github.com/partitionlab/gohypart/hgraph"
)

// Config configures one Refiner.
type Config struct {
	Objective               hgraph.Objective
	Solver                  SolverKind
	Alpha                   float64
	Epsilon                 float64
	UseMostBalancedMinCut   bool
	UseAdaptiveAlphaStop    bool
	IgnoreSmallHyperedgeCut bool
	MaxAlphaDoublings       int
}

// Refiner runs the flow/min-cut local search for a single block pair.
type Refiner struct {
	cfg Config
}

// NewRefiner returns a Refiner for cfg.
func NewRefiner(cfg Config) *Refiner {
	return &Refiner{cfg: cfg}
}

// CutWeight sums ω(e) over hyperedges with pins in both b0 and b1, the
// quantity the quotient graph schedules block pairs by.
func CutWeight(h *hgraph.Hypergraph, b0, b1 int32) int64 {
	var total int64
	for e := int32(0); e < int32(h.M()); e++ {
		if h.PinCountInPart(e, b0) > 0 && h.PinCountInPart(e, b1) > 0 {
			total += h.EdgeWeight(e)
		}
	}
	return total
}

// RefinePair runs one adaptive-α flow-refinement pass on the (b0,b1)
// block pair and reports whether it improved (objective, imbalance)
// lexicographically. isTopLevel disables the small-cut skip.
func (r *Refiner) RefinePair(h *hgraph.Hypergraph, b0, b1 int32, isTopLevel bool) (bool, error) {
	cut := CutWeight(h, b0, b1)
	if cut == 0 {
		return false, nil
	}
	if r.cfg.IgnoreSmallHyperedgeCut && SmallCutSkip(cut, isTopLevel) {
		return false, nil
	}

	bestObjective := h.Evaluate(r.cfg.Objective)
	bestImbalance := h.Imbalance()
	maxBlockWeight := h.MaxBlockWeight(r.cfg.Epsilon)

	alpha := r.cfg.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	solver := NewSolver(r.cfg.Solver)

	anyImproved := false
	maxDoublings := r.cfg.MaxAlphaDoublings
	if maxDoublings <= 0 {
		maxDoublings = 6
	}

	for round := 0; round <= maxDoublings; round++ {
		sp, err := BuildSubproblem(h, b0, b1, alpha, r.cfg.Objective)
		if err != nil {
			return anyImproved, err
		}
		if _, err := solver.MaximumFlow(sp.Net); err != nil {
			return anyImproved, err
		}

		var proposed map[int32]int32
		if r.cfg.UseMostBalancedMinCut {
			proposed = sp.MostBalancedCut(h, maxBlockWeight)
		} else {
			proposed = sp.rawSourceSideAssignment()
		}

		type move struct{ v, from, to int32 }
		var moves []move
		for v, to := range proposed {
			from := h.Part(v)
			if from != to {
				moves = append(moves, move{v, from, to})
			}
		}
		for _, m := range moves {
			if err := h.ChangeNodePart(m.v, m.from, m.to); err != nil {
				return anyImproved, err
			}
		}

		newObjective := h.Evaluate(r.cfg.Objective)
		newImbalance := h.Imbalance()

		improved := newObjective < bestObjective ||
			(newObjective == bestObjective && newImbalance < bestImbalance)

		if !improved {
			for _, m := range moves {
				h.ChangeNodePart(m.v, m.to, m.from)
			}
			break
		}

		bestObjective, bestImbalance = newObjective, newImbalance
		anyImproved = true

		if !r.cfg.UseAdaptiveAlphaStop {
			break
		}
		alpha *= 2
	}

	return anyImproved, nil
}

// rawSourceSideAssignment maps every reassignable vertex to whichever
// terminal it is currently reachable from, without the balance-repair
// pass MostBalancedCut performs — used when UseMostBalancedMinCut is
// off and the caller accepts an unbalanced min cut outright.
func (sp *Subproblem) rawSourceSideAssignment() map[int32]int32 {
	reach := sourceReachable(sp.Net)
	proposed := make(map[int32]int32, len(sp.hgVertex))
	for node, k := range sp.kind {
		if k != nodeVertex {
			continue
		}
		v := sp.hgVertex[node]
		if reach[node] {
			proposed[v] = sp.b0
		} else {
			proposed[v] = sp.b1
		}
	}
	return proposed
}

// QuotientSchedule runs RefinePair round-robin over every block pair
// with a non-empty cut
// until a full pass produces no improvement anywhere.
func (r *Refiner) QuotientSchedule(h *hgraph.Hypergraph, isTopLevel bool) (int, error) {
	k := h.K()
	totalImprovements := 0
	for {
		passImproved := false
		for b0 := int32(0); b0 < int32(k); b0++ {
			for b1 := b0 + 1; b1 < int32(k); b1++ {
				if CutWeight(h, b0, b1) == 0 {
					continue
				}
				improved, err := r.RefinePair(h, b0, b1, isTopLevel)
				if err != nil {
					return totalImprovements, err
				}
				if improved {
					passImproved = true
					totalImprovements++
				}
			}
		}
		if !passImproved {
			break
		}
	}
	return totalImprovements, nil
}
