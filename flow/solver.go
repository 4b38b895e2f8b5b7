package flow

// Solver computes the maximum flow of a Network, leaving it annotated
// with the flow assignment that realises that value. Solvers expose
// only MaximumFlow and reverse-edge residuals.
type Solver interface {
	MaximumFlow(g *Network) (int64, error)
}

// SolverKind names one of the four pluggable solvers.
type SolverKind int

const (
	// IBFS is the default: fastest in the common case.
	IBFS SolverKind = iota
	BoykovKolmogorovKind
	PushRelabelKind
	EdmondsKarpKind
)

// NewSolver returns the Solver implementation for kind.
func NewSolver(kind SolverKind) Solver {
	switch kind {
	case BoykovKolmogorovKind:
		return BoykovKolmogorov{}
	case PushRelabelKind:
		return PushRelabel{}
	case EdmondsKarpKind:
		return EdmondsKarp{}
	default:
		return IncrementalBFS{}
	}
}
