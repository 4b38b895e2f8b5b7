// Package gainpq implements the k-way gain priority queue used by the FM
// refiner (component D) to pick the next vertex move.
//
// A KWayPriorityQueue holds one max-heap per block, keyed by move gain.
// Blocks are partitioned into three disjoint ranges over a single slot
// permutation: enabled, non-empty-but-disabled, and unused. DeleteMax
// only looks at the enabled range, so EnablePart/DisablePart let a
// caller mask out blocks without paying for a per-call scan of every
// block's heap.
package gainpq
