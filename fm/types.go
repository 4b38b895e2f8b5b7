package fm

import "github.com/partitionlab/gohypart/hgraph"

// StoppingRule selects which of two stopping criteria bounds a
// refinement pass.
type StoppingRule int

const (
	// Simple stops once the number of consecutive non-improving moves
	// exceeds Config.FruitlessLimit.
	Simple StoppingRule = iota
	// Adaptive stops once rating.AdaptiveStopper judges further
	// improvement statistically unlikely, parameterised by Config.Alpha.
	Adaptive
)

// Config parameterises one Refiner.Run call.
type Config struct {
	Objective hgraph.Objective
	// MaxMoves bounds how many pop-from-pq iterations one pass performs,
	// counting infeasible pops that get skipped.
	MaxMoves int
	// FruitlessLimit is the Simple stopping rule's threshold.
	FruitlessLimit int
	// Alpha parameterises the Adaptive stopping rule; +Inf disables it.
	Alpha float64
	// Epsilon is the balance tolerance passed to hgraph.MaxBlockWeight.
	Epsilon float64
	// Rule selects which stopping criterion governs this pass.
	Rule StoppingRule
	// Mode restricts moves to a single block pair (2-way FM) or allows
	// any of the k-1 other blocks per vertex (k-way FM).
	Mode Mode
	// Pair is used only when Mode == TwoWay: the only two blocks moves
	// may occur between.
	Pair [2]int32
}

// Mode selects between the two FM variants.
type Mode int

const (
	// KWay allows a border vertex to move to any of the other k-1
	// blocks.
	KWay Mode = iota
	// TwoWay restricts moves to Config.Pair, used when the orchestrator
	// runs FM as part of a block-pair flow/FM alternation.
	TwoWay
)

// Result reports what one Run call did.
type Result struct {
	MovesApplied    int
	MovesRolledBack int
	// ObjectiveDelta is signed so that a positive value is an
	// improvement (objective decreased by this amount).
	ObjectiveDelta int64
}
