// Package partition implements the orchestrator: the
// BUILT → COARSENING → INITIAL → UNCOARSENING → DONE state machine that
// drives rating's coarsener, initial's pool, and fm/flow's refiners
// into the public Partition entry point, including V-cycle repetition
// (direct k-way only).
package partition
