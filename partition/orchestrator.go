package partition

import (
	"fmt"
	"math/rand"

	"github.com/partitionlab/gohypart/fm"
	"github.com/partitionlab/gohypart/flow"
	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/initial"
	"github.com/partitionlab/gohypart/internal/rng"
	"github.com/partitionlab/gohypart/rating"
)

// Partition runs the full multilevel pipeline on h:
// coarsen, initial-partition, uncoarsen with combined FM+flow
// refinement per level, repeating for Config.VCycles additional rounds
// in direct-k-way mode. h is mutated in place; its final Part
// assignment is the returned partition.
//
// Each state transition only commits fully-applied mutations (every
// hgraph.Contract/ChangeNodePart/Uncontract call is itself atomic), so
// an error at any step leaves h exactly as it was after the last
// successfully completed step — an "idempotent on failure" guarantee
// satisfied by construction rather than by an explicit rollback log.
func Partition(h *hgraph.Hypergraph, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	r := rng.FromSeed(cfg.Seed)
	log := cfg.logger()
	log.Debugf("state: %s", Built)

	ratingCfg := cfg.Rating
	if ratingCfg.Function == rating.EdgeFrequency {
		ratingCfg.EdgeFrequency = cfg.EdgeFrequency
	}

	cycles := 0
	maxCycles := cfg.VCycles
	if cfg.Mode == Recursive {
		maxCycles = 0
	}

	for cycle := 0; cycle <= maxCycles; cycle++ {
		log.Debugf("state: %s (cycle %d)", Coarsening, cycle)
		coarsener := rating.NewCoarsener(ratingCfg)
		if _, err := coarsener.Run(h, cfg.K, rng.Derive(r, uint64(cycle)*4+1)); err != nil {
			return Result{}, fmt.Errorf("partition: %w", err)
		}

		if cycle == 0 {
			log.Debugf("state: %s", Initial)
			var err error
			switch cfg.Mode {
			case Direct:
				err = initial.DirectKWay(h, cfg.K, cfg.Initial, rng.Derive(r, uint64(cycle)*4+2))
			default:
				err = initial.RecursiveBisection(h, cfg.K, cfg.Initial, rng.Derive(r, uint64(cycle)*4+2))
			}
			if err != nil {
				return Result{}, fmt.Errorf("partition: %w", err)
			}
		}

		log.Debugf("state: %s (cycle %d)", Uncoarsening, cycle)
		if err := uncoarsenAndRefine(h, cfg, rng.Derive(r, uint64(cycle)*4+3)); err != nil {
			return Result{}, fmt.Errorf("partition: %w", err)
		}

		cycles++
	}
	log.Debugf("state: %s", Done)

	return Result{
		Objective: h.Evaluate(cfg.Objective),
		Imbalance: h.Imbalance(),
		Feasible:  h.IsBalanced(cfg.Epsilon),
		Cycles:    cycles,
	}, nil
}

// uncoarsenAndRefine pops the contraction stack one level at a time,
// running the combined FM+flow refinement pass after every Uncontract
// call until the hypergraph is back to its original size.
func uncoarsenAndRefine(h *hgraph.Hypergraph, cfg Config, r *rand.Rand) error {
	for h.PendingContractions() > 0 {
		if _, _, err := h.Uncontract(); err != nil {
			return err
		}
		isTopLevel := h.PendingContractions() == 0
		if err := refineLevel(h, cfg, r, isTopLevel); err != nil {
			return err
		}
	}
	return nil
}

// refineLevel alternates FM and flow refinement on the current level
// until neither improves.
func refineLevel(h *hgraph.Hypergraph, cfg Config, r *rand.Rand, isTopLevel bool) error {
	runFM := cfg.Refiners == FMOnly || cfg.Refiners == FMAndFlow
	runFlow := cfg.Refiners == FlowOnly || cfg.Refiners == FMAndFlow
	if runFlow && cfg.ExecPolicy != nil {
		runFlow = cfg.ExecPolicy.ShouldRun(countActive(h))
	}

	fmConfig := cfg.FM
	fmConfig.Objective = cfg.Objective
	fmConfig.Epsilon = cfg.Epsilon
	fmConfig.Mode = fm.KWay
	fmRefiner := fm.NewRefiner(fmConfig)

	flowConfig := cfg.Flow
	flowConfig.Objective = cfg.Objective
	flowConfig.Epsilon = cfg.Epsilon
	flowRefiner := flow.NewRefiner(flowConfig)

	for {
		improved := false

		if runFM {
			res, err := fmRefiner.Run(h, rng.Derive(r, 1))
			if err != nil {
				return err
			}
			if res.MovesApplied > 0 {
				improved = true
			}
		}

		if runFlow {
			n, err := flowRefiner.QuotientSchedule(h, isTopLevel)
			if err != nil {
				return err
			}
			if n > 0 {
				improved = true
			}
		}

		if !improved {
			break
		}
	}
	return nil
}

func countActive(h *hgraph.Hypergraph) int {
	n := 0
	for v := int32(0); v < int32(h.N()); v++ {
		if h.IsActive(v) {
			n++
		}
	}
	return n
}
