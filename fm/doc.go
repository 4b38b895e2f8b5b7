// Package fm implements the Fiduccia-Mattheyses local-search refiner:
// seed a gainpq.KWayPriorityQueue with every border vertex's move
// gains, repeatedly apply the globally best feasible
// move, track the best objective/imbalance prefix seen, and roll back
// every move performed after that point.
//
// Gain maintenance after a move is done by recomputation rather than an
// incremental delta table: ComputeGain is cheap enough (O(edge size)
// per touched edge) to call again for every unlocked neighbour, and
// recomputing from the current pin counts is, by construction, exactly
// correct — there is no separate table of (before,after) transition
// rules to keep in sync with it. ComputeGain branches on the refiner's
// objective: km1 reads off the pin-count transition directly, while cut
// (at any k) compares connectivity before and after the hypothetical
// move and only scores edges whose cut status actually flips.
package fm
