package fm

import "errors"

// ErrNoBlocksConfigured is returned by Run when h.K() has not been set
// (SetK/AssignInitialPart must precede refinement).
var ErrNoBlocksConfigured = errors.New("fm: hypergraph has no blocks configured")
