package rating

import "fmt"

// Function selects the rating formula used to score a candidate
// contraction pair (u, v).
type Function int

const (
	// HeavyEdge sums ω(e)/(|Pins[e]|-1) over shared hyperedges, normalised
	// by √(c(u)·c(v)).
	HeavyEdge Function = iota
	// EdgeFrequency adds a learned per-hyperedge frequency term from a
	// prior run on top of HeavyEdge; only meaningful when an outer
	// evolutionary loop supplies Config.EdgeFrequency.
	EdgeFrequency
)

func (f Function) String() string {
	switch f {
	case HeavyEdge:
		return "heavy_edge"
	case EdgeFrequency:
		return "edge_frequency"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// HeavyNodePenalty discourages contracting two already-heavy vertices.
type HeavyNodePenalty int

const (
	// NoPenalty applies the raw rating unmodified.
	NoPenalty HeavyNodePenalty = iota
	// MultiplicativePenalty divides the rating by max(c(u),c(v)), so two
	// already-large clusters merging scores lower than an equally
	// well-connected small/large pair.
	MultiplicativePenalty
)

// Acceptance breaks ties among candidates with the (near-)best rating
// for a given u.
type Acceptance int

const (
	// RandomTiebreak picks uniformly among the candidates within
	// floating-point tolerance of the best rating.
	RandomTiebreak Acceptance = iota
	// PreferUnmatched prefers a candidate not yet touched this pass
	// (i.e. still at its original weight) over one already grown by a
	// prior contraction, falling back to RandomTiebreak among equals.
	PreferUnmatched
)

// FixedVertexPolicy governs whether a contraction may cross fixed/free
// vertex boundaries.
type FixedVertexPolicy int

const (
	// FreeOnly forbids contracting any fixed vertex at all.
	FreeOnly FixedVertexPolicy = iota
	// Allowed permits any fixed vertex to absorb or be absorbed by a
	// free vertex; two differently-fixed vertices are still forbidden.
	Allowed
	// EquivalentOnly permits a fixed vertex to contract only with a free
	// vertex or a vertex fixed to the same block.
	EquivalentOnly
)

// Variant controls when the coarsener rescans a vertex's neighbourhood
// for a fresh best rating.
type Variant int

const (
	// HeavyLazy defers rescoring a candidate until it is discovered
	// stale (one of its incident edges changed since it was cached).
	HeavyLazy Variant = iota
	// HeavyFull recomputes every active neighbour's rating after every
	// single contraction.
	HeavyFull
)

// Config parameterises both the rating function and the coarsening
// loop built on top of it.
type Config struct {
	Function          Function
	Penalty           HeavyNodePenalty
	Acceptance        Acceptance
	FixedVertexPolicy FixedVertexPolicy
	Variant           Variant

	// RespectCommunities restricts contraction to same-community pairs
	// when true; vertices with
	// Community() == -1 are treated as belonging to no community and may
	// contract with anything.
	RespectCommunities bool

	// MaxVertexWeightRatioS and MaxVertexWeightRatioT define
	// maxVertexWeight = S·W(V)/(T·k), the per-contraction size cap.
	// T also sets the coarsening stop threshold (active vertices ≤ T·k).
	MaxVertexWeightRatioS float64
	MaxVertexWeightRatioT float64

	// EdgeFrequency is read only by the EdgeFrequency rating function;
	// nil is equivalent to an all-zero frequency map. It is a
	// pass-through sink for an outer evolutionary loop that this
	// package does not itself implement.
	EdgeFrequency map[int]float64
}

// Validate reports whether c is well-formed.
func (c Config) Validate() error {
	if c.MaxVertexWeightRatioS <= 0 || c.MaxVertexWeightRatioT <= 0 {
		return fmt.Errorf("rating.Validate: %w: ratios must be positive", ErrInvalidConfig)
	}
	return nil
}

// MaxVertexWeight computes the per-contraction size cap for a
// hypergraph with total active weight totalWeight and k target blocks.
func (c Config) MaxVertexWeight(totalWeight int64, k int) int64 {
	if k <= 0 {
		k = 1
	}
	return int64(c.MaxVertexWeightRatioS * float64(totalWeight) / (c.MaxVertexWeightRatioT * float64(k)))
}

// StopThreshold computes the active-vertex-count floor at which
// coarsening stops.
func (c Config) StopThreshold(k int) int {
	return int(c.MaxVertexWeightRatioT * float64(k))
}

// DefaultConfig returns the KaHyPar-typical parameterisation: heavy_edge
// rating, multiplicative heavy-node penalty, random tie-breaking,
// free-only fixed-vertex policy, heavy-lazy rescoring, S=1 T=160 (the
// original's default coarsening stop ratio).
func DefaultConfig() Config {
	return Config{
		Function:              HeavyEdge,
		Penalty:               MultiplicativePenalty,
		Acceptance:            RandomTiebreak,
		FixedVertexPolicy:     FreeOnly,
		Variant:               HeavyLazy,
		MaxVertexWeightRatioS: 1,
		MaxVertexWeightRatioT: 160,
	}
}
