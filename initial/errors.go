package initial

import "fmt"

// ErrNoBlocks is returned when a caller asks for fewer than 2 blocks.
var ErrNoBlocks = fmt.Errorf("initial: blocks must be >= 2")

// ErrInfeasible is returned by DirectKWay when no pool trial ran. Config
// normalisation always leaves at least one heuristic and one trial, so
// DirectKWay does not reach it with any Config.
var ErrInfeasible = fmt.Errorf("initial: no trial produced a partition")
