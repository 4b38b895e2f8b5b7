package config

import (
	"flag"

	"github.com/partitionlab/gohypart/fm"
	"github.com/partitionlab/gohypart/flow"
	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/initial"
	"github.com/partitionlab/gohypart/rating"
)

// Mode selects between recursive-bisection and direct-k-way initial
// partitioning.
type Mode int

const (
	Recursive Mode = iota
	Direct
)

func parseMode(s string) (Mode, bool) {
	switch s {
	case "recursive":
		return Recursive, true
	case "direct":
		return Direct, true
	default:
		return 0, false
	}
}

// Config mirrors the CLI/INI flag surface . Every field
// keeps the flag's own type (mostly string, for enum flags) so
// ApplyPreset and the flag package share exactly the same parsing
// path; RatingConfig, FMConfig, FlowConfig, ExecutionPolicy and
// InitialConfig convert to the strongly-typed component Configs.
type Config struct {
	// Required.
	Hypergraph string
	Blocks     int
	Epsilon    float64
	Objective  string // "cut" | "km1"
	ModeStr    string // "recursive" | "direct"

	// Generic.
	Seed    int64
	VCycles int
	CMaxNet int // ignore hyperedges larger than this many pins; 0 = no limit

	// Coarsening (c-*).
	CType                      string // rating.Function spelling
	CS                         float64
	CT                         float64
	CRatingScore               string // rating.Function spelling
	CRatingUseCommunities      bool
	CRatingHeavyNodePenalty    string // rating.HeavyNodePenalty spelling
	CRatingAcceptanceCriterion string // rating.Acceptance spelling
	CFixedVertexAcceptance     string // rating.FixedVertexPolicy spelling

	// Initial partitioning (i-*), mirrors the coarsening set.
	IType                      string
	IS                         float64
	IT                         float64
	IRatingScore               string
	IRatingUseCommunities      bool
	IRatingHeavyNodePenalty    string
	IRatingAcceptanceCriterion string
	IFixedVertexAcceptance     string
	IRuns                      int

	// Refinement (r-*).
	RType                          string // "fm" | "flow" | "fm+flow"
	RRuns                          int
	RFMStop                        string // "simple" | "adaptive_opt"
	RFMStopI                       int
	RFMStopAlpha                   float64
	RFlowAlgorithm                 string // flow.SolverKind spelling
	RFlowNetwork                   string // reserved for future network variants; currently informational only
	RFlowExecutionPolicy           string // flow.ExecutionPolicyKind spelling
	RFlowAlpha                     float64
	RFlowBeta                      int
	RFlowUseMostBalancedMinimumCut bool
	RFlowUseAdaptiveAlphaStopping  bool
	RFlowIgnoreSmallHyperedgeCut   bool

	Preset string
}

// Default returns the KaHyPar-typical defaults for every field.
func Default() *Config {
	return &Config{
		Blocks:                         2,
		Epsilon:                        0.03,
		Objective:                      "cut",
		ModeStr:                        "recursive",
		Seed:                           0,
		VCycles:                        0,
		CType:                          "heavy_edge",
		CS:                             1,
		CT:                             160,
		CRatingScore:                   "heavy_edge",
		CRatingHeavyNodePenalty:        "multiplicative",
		CRatingAcceptanceCriterion:     "random",
		CFixedVertexAcceptance:         "free_only",
		IType:                          "heavy_edge",
		IS:                             1,
		IT:                             160,
		IRatingScore:                   "heavy_edge",
		IRatingHeavyNodePenalty:        "multiplicative",
		IRatingAcceptanceCriterion:     "random",
		IFixedVertexAcceptance:         "free_only",
		IRuns:                          20,
		RType:                          "fm+flow",
		RRuns:                          1,
		RFMStop:                        "simple",
		RFMStopI:                       50,
		RFMStopAlpha:                   1,
		RFlowAlgorithm:                 "ibfs",
		RFlowExecutionPolicy:           "exponential",
		RFlowAlpha:                     4,
		RFlowBeta:                      2,
		RFlowUseMostBalancedMinimumCut: true,
		RFlowUseAdaptiveAlphaStopping:  true,
		RFlowIgnoreSmallHyperedgeCut:   true,
	}
}

// NewFlagSet registers every field above onto fs (typically
// flag.CommandLine), returning the Config those flags populate on
// fs.Parse. Long and short spellings alias the same variable, e.g.
// `-hypergraph|-h`.
func NewFlagSet(fs *flag.FlagSet) *Config {
	c := Default()

	fs.StringVar(&c.Hypergraph, "hypergraph", "", "path to the input hypergraph")
	fs.StringVar(&c.Hypergraph, "h", "", "shorthand for -hypergraph")
	fs.IntVar(&c.Blocks, "blocks", c.Blocks, "number of blocks k")
	fs.IntVar(&c.Blocks, "k", c.Blocks, "shorthand for -blocks")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "allowed imbalance")
	fs.Float64Var(&c.Epsilon, "e", c.Epsilon, "shorthand for -epsilon")
	fs.StringVar(&c.Objective, "objective", c.Objective, "cut | km1")
	fs.StringVar(&c.Objective, "o", c.Objective, "shorthand for -objective")
	fs.StringVar(&c.ModeStr, "mode", c.ModeStr, "recursive | direct")
	fs.StringVar(&c.ModeStr, "m", c.ModeStr, "shorthand for -mode")

	fs.Int64Var(&c.Seed, "seed", c.Seed, "PRNG seed")
	fs.IntVar(&c.VCycles, "vcycles", c.VCycles, "number of V-cycles (direct k-way only)")
	fs.IntVar(&c.CMaxNet, "cmaxnet", c.CMaxNet, "ignore hyperedges larger than this many pins (0 = no limit)")

	fs.StringVar(&c.CType, "c-type", c.CType, "coarsening rating function")
	fs.Float64Var(&c.CS, "c-s", c.CS, "coarsening max-vertex-weight ratio S")
	fs.Float64Var(&c.CT, "c-t", c.CT, "coarsening stop-threshold ratio T")
	fs.StringVar(&c.CRatingScore, "c-rating-score", c.CRatingScore, "coarsening rating score function")
	fs.BoolVar(&c.CRatingUseCommunities, "c-rating-use-communities", c.CRatingUseCommunities, "restrict coarsening to same-community pairs")
	fs.StringVar(&c.CRatingHeavyNodePenalty, "c-rating-heavy_node_penalty", c.CRatingHeavyNodePenalty, "none | multiplicative")
	fs.StringVar(&c.CRatingAcceptanceCriterion, "c-rating-acceptance-criterion", c.CRatingAcceptanceCriterion, "random | prefer_unmatched")
	fs.StringVar(&c.CFixedVertexAcceptance, "c-fixed-vertex-acceptance-criterion", c.CFixedVertexAcceptance, "free_only | allowed | equivalent_only")

	fs.StringVar(&c.IType, "i-type", c.IType, "initial-partitioning rating function")
	fs.Float64Var(&c.IS, "i-s", c.IS, "initial-partitioning max-vertex-weight ratio S")
	fs.Float64Var(&c.IT, "i-t", c.IT, "initial-partitioning stop-threshold ratio T")
	fs.StringVar(&c.IRatingScore, "i-rating-score", c.IRatingScore, "initial-partitioning rating score function")
	fs.BoolVar(&c.IRatingUseCommunities, "i-rating-use-communities", c.IRatingUseCommunities, "restrict initial-partitioning coarsening to same-community pairs")
	fs.StringVar(&c.IRatingHeavyNodePenalty, "i-rating-heavy_node_penalty", c.IRatingHeavyNodePenalty, "none | multiplicative")
	fs.StringVar(&c.IRatingAcceptanceCriterion, "i-rating-acceptance-criterion", c.IRatingAcceptanceCriterion, "random | prefer_unmatched")
	fs.StringVar(&c.IFixedVertexAcceptance, "i-fixed-vertex-acceptance-criterion", c.IFixedVertexAcceptance, "free_only | allowed | equivalent_only")
	fs.IntVar(&c.IRuns, "i-runs", c.IRuns, "initial-partitioning trials per call")

	fs.StringVar(&c.RType, "r-type", c.RType, "fm | flow | fm+flow")
	fs.IntVar(&c.RRuns, "r-runs", c.RRuns, "refinement passes per uncoarsening level")
	fs.StringVar(&c.RFMStop, "r-fm-stop", c.RFMStop, "simple | adaptive_opt")
	fs.IntVar(&c.RFMStopI, "r-fm-stop-i", c.RFMStopI, "simple stopping rule's fruitless-move limit")
	fs.Float64Var(&c.RFMStopAlpha, "r-fm-stop-alpha", c.RFMStopAlpha, "adaptive stopping rule's alpha")
	fs.StringVar(&c.RFlowAlgorithm, "r-flow-algorithm", c.RFlowAlgorithm, "edmonds_karp | push_relabel | boykov_kolmogorov | ibfs")
	fs.StringVar(&c.RFlowNetwork, "r-flow-network", c.RFlowNetwork, "reserved; informational only")
	fs.StringVar(&c.RFlowExecutionPolicy, "r-flow-execution-policy", c.RFlowExecutionPolicy, "constant | exponential | multilevel")
	fs.Float64Var(&c.RFlowAlpha, "r-flow-alpha", c.RFlowAlpha, "flow subproblem BFS radius multiplier")
	fs.IntVar(&c.RFlowBeta, "r-flow-beta", c.RFlowBeta, "constant execution policy's level period")
	fs.BoolVar(&c.RFlowUseMostBalancedMinimumCut, "r-flow-use-most-balanced-minimum-cut", c.RFlowUseMostBalancedMinimumCut, "")
	fs.BoolVar(&c.RFlowUseAdaptiveAlphaStopping, "r-flow-use-adaptive-alpha-stopping-rule", c.RFlowUseAdaptiveAlphaStopping, "")
	fs.BoolVar(&c.RFlowIgnoreSmallHyperedgeCut, "r-flow-ignore-small-hyperedge-cut", c.RFlowIgnoreSmallHyperedgeCut, "")

	fs.StringVar(&c.Preset, "preset", "", "path to an INI preset file overriding the above")

	return c
}

// Validate checks the subset of InvalidConfiguration conditions that
// config alone can catch (file existence and hypergraph
// well-formedness are hmetis's and hgraph's responsibility).
func (c *Config) Validate() error {
	if c.Hypergraph == "" {
		return invalidf("hypergraph path is required")
	}
	if c.Blocks < 2 {
		return invalidf("blocks (k) must be >= 2, got %d", c.Blocks)
	}
	if c.Epsilon <= 0 {
		return invalidf("epsilon must be > 0, got %f", c.Epsilon)
	}
	if _, ok := hgraph.ParseObjective(c.Objective); !ok {
		return invalidf("unknown objective %q", c.Objective)
	}
	mode, ok := parseMode(c.ModeStr)
	if !ok {
		return invalidf("unknown mode %q", c.ModeStr)
	}
	if mode == Recursive && c.VCycles > 0 {
		return invalidf("v-cycles are forbidden in recursive-bisection mode")
	}
	return nil
}

// RatingConfig builds the rating.Config for the coarsening stage from
// the c-* flags.
func (c *Config) RatingConfig() (rating.Config, error) {
	return buildRatingConfig(c.CRatingScore, c.CS, c.CT, c.CRatingUseCommunities, c.CRatingHeavyNodePenalty, c.CRatingAcceptanceCriterion, c.CFixedVertexAcceptance)
}

// InitialRatingConfig builds the rating.Config for the initial
// partitioner's own internal coarsening from the i-* flags.
func (c *Config) InitialRatingConfig() (rating.Config, error) {
	return buildRatingConfig(c.IRatingScore, c.IS, c.IT, c.IRatingUseCommunities, c.IRatingHeavyNodePenalty, c.IRatingAcceptanceCriterion, c.IFixedVertexAcceptance)
}

func buildRatingConfig(score string, s, t float64, communities bool, penalty, acceptance, fixedVertex string) (rating.Config, error) {
	rc := rating.DefaultConfig()
	switch score {
	case "heavy_edge":
		rc.Function = rating.HeavyEdge
	case "edge_frequency":
		rc.Function = rating.EdgeFrequency
	default:
		return rating.Config{}, invalidf("unknown rating score %q", score)
	}
	switch penalty {
	case "none":
		rc.Penalty = rating.NoPenalty
	case "multiplicative":
		rc.Penalty = rating.MultiplicativePenalty
	default:
		return rating.Config{}, invalidf("unknown heavy_node_penalty %q", penalty)
	}
	switch acceptance {
	case "random":
		rc.Acceptance = rating.RandomTiebreak
	case "prefer_unmatched":
		rc.Acceptance = rating.PreferUnmatched
	default:
		return rating.Config{}, invalidf("unknown acceptance-criterion %q", acceptance)
	}
	switch fixedVertex {
	case "free_only":
		rc.FixedVertexPolicy = rating.FreeOnly
	case "allowed":
		rc.FixedVertexPolicy = rating.Allowed
	case "equivalent_only":
		rc.FixedVertexPolicy = rating.EquivalentOnly
	default:
		return rating.Config{}, invalidf("unknown fixed-vertex-acceptance-criterion %q", fixedVertex)
	}
	rc.RespectCommunities = communities
	rc.MaxVertexWeightRatioS = s
	rc.MaxVertexWeightRatioT = t
	return rc, nil
}

// InitialConfig builds the initial.Config used for the
// initial-partitioning pool from the i-runs flag. The i-rating-* flags
// are resolved separately via InitialRatingConfig and are currently
// unconsumed by the initial package (see DESIGN.md): the pool
// heuristics run directly against the already-coarsened hypergraph
// rather than performing a second internal coarsening pass.
func (c *Config) InitialConfig() initial.Config {
	ic := initial.DefaultConfig()
	ic.Objective = c.ObjectiveValue()
	ic.Epsilon = c.Epsilon
	if c.IRuns > 0 {
		ic.Runs = c.IRuns
	}
	return ic
}

// FMConfig builds the fm.Config template used by the orchestrator; Mode
// and Pair are filled in per call site (k-way at the top level, 2-way
// during flow/FM alternation on a block pair).
func (c *Config) FMConfig() (fm.Config, error) {
	obj, _ := hgraph.ParseObjective(c.Objective)
	fc := fm.Config{
		Objective:      obj,
		FruitlessLimit: c.RFMStopI,
		Alpha:          c.RFMStopAlpha,
		Epsilon:        c.Epsilon,
	}
	switch c.RFMStop {
	case "simple":
		fc.Rule = fm.Simple
	case "adaptive_opt":
		fc.Rule = fm.Adaptive
	default:
		return fm.Config{}, invalidf("unknown r-fm-stop %q", c.RFMStop)
	}
	return fc, nil
}

// FlowConfig builds the flow.Config used by the orchestrator's
// block-pair scheduling.
func (c *Config) FlowConfig() (flow.Config, error) {
	obj, _ := hgraph.ParseObjective(c.Objective)
	fc := flow.Config{
		Objective:               obj,
		Alpha:                   c.RFlowAlpha,
		Epsilon:                 c.Epsilon,
		UseMostBalancedMinCut:   c.RFlowUseMostBalancedMinimumCut,
		UseAdaptiveAlphaStop:    c.RFlowUseAdaptiveAlphaStopping,
		IgnoreSmallHyperedgeCut: c.RFlowIgnoreSmallHyperedgeCut,
	}
	switch c.RFlowAlgorithm {
	case "edmonds_karp":
		fc.Solver = flow.EdmondsKarpKind
	case "push_relabel":
		fc.Solver = flow.PushRelabelKind
	case "boykov_kolmogorov":
		fc.Solver = flow.BoykovKolmogorovKind
	case "ibfs":
		fc.Solver = flow.IBFS
	default:
		return flow.Config{}, invalidf("unknown r-flow-algorithm %q", c.RFlowAlgorithm)
	}
	return fc, nil
}

// ExecutionPolicy builds the flow.ExecutionPolicy governing which
// uncoarsening levels run flow refinement.
func (c *Config) ExecutionPolicy(originalN int) (*flow.ExecutionPolicy, error) {
	switch c.RFlowExecutionPolicy {
	case "constant":
		return flow.NewExecutionPolicy(flow.ConstantPolicy, c.RFlowBeta, originalN), nil
	case "exponential":
		return flow.NewExecutionPolicy(flow.ExponentialPolicy, c.RFlowBeta, originalN), nil
	case "multilevel":
		return flow.NewExecutionPolicy(flow.MultilevelPolicy, c.RFlowBeta, originalN), nil
	default:
		return nil, invalidf("unknown r-flow-execution-policy %q", c.RFlowExecutionPolicy)
	}
}

// ObjectiveValue parses the resolved objective.
func (c *Config) ObjectiveValue() hgraph.Objective {
	obj, _ := hgraph.ParseObjective(c.Objective)
	return obj
}

// ModeValue parses the resolved initial-partitioning mode.
func (c *Config) ModeValue() Mode {
	mode, _ := parseMode(c.ModeStr)
	return mode
}
