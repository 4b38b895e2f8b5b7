package gainpq

import (
	"fmt"
	"math"
	"math/rand"
)

const invalidIndex int32 = -1
const invalidPart int32 = -1

// KWayPriorityQueue holds one max-heap per block (0..k-1), arranged
// behind a single permutation so that EnablePart/DisablePart/DeleteMax
// run in O(1) amortised instead of scanning all k blocks.
//
// Slot layout, maintained as an invariant after every operation:
//
//	[0, numEnabled)              enabled, non-empty
//	[numEnabled, numNonEmpty)    disabled, non-empty
//	[numNonEmpty, k)             unused (never inserted into, or emptied
//	                             and swapped out)
//
// index[part] gives the slot currently holding part's heap; partAt[slot]
// gives the inverse. swap keeps both arrays consistent.
type KWayPriorityQueue struct {
	queues []*maxHeap
	index  []int32
	partAt []int32

	numEnabled  int32
	numNonEmpty int32
	numEntries  int

	k           int32
	randomTies  bool
	rng         *rand.Rand
}

// New returns a queue over k blocks. If randomTies is true, DeleteMax
// and DeleteMaxFromPart break ties among equal top gains uniformly at
// random using rng (which must then be non-nil); otherwise the lowest
// enabled slot index wins, which is deterministic but not meaningful
// beyond being reproducible.
func New(k int32, randomTies bool, rng *rand.Rand) *KWayPriorityQueue {
	pq := &KWayPriorityQueue{
		queues:     make([]*maxHeap, k),
		index:      make([]int32, k),
		partAt:     make([]int32, k),
		k:          k,
		randomTies: randomTies,
		rng:        rng,
	}
	for i := int32(0); i < k; i++ {
		pq.queues[i] = newMaxHeap()
		pq.index[i] = invalidIndex
		pq.partAt[i] = invalidPart
	}
	return pq
}

func (pq *KWayPriorityQueue) checkPart(part int32) error {
	if part < 0 || part >= pq.k {
		return fmt.Errorf("gainpq: %w: %d", ErrPartRange, part)
	}
	return nil
}

// swap exchanges the heaps (and their part labels) sitting at slots a
// and b, fixing up index[] so it keeps pointing at the right slot for
// whichever part now owns each side.
func (pq *KWayPriorityQueue) swap(a, b int32) {
	if a == b {
		return
	}
	pq.queues[a], pq.queues[b] = pq.queues[b], pq.queues[a]
	pq.partAt[a], pq.partAt[b] = pq.partAt[b], pq.partAt[a]
	if pq.partAt[a] != invalidPart {
		pq.index[pq.partAt[a]] = a
	}
	if pq.partAt[b] != invalidPart {
		pq.index[pq.partAt[b]] = b
	}
}

// IsUnused reports whether part has never been inserted into, or has
// been emptied and swapped out of the non-empty range.
func (pq *KWayPriorityQueue) IsUnused(part int32) bool {
	idx := pq.index[part]
	return idx == invalidIndex || idx >= pq.numNonEmpty
}

// IsEnabled reports whether part's heap participates in DeleteMax.
func (pq *KWayPriorityQueue) IsEnabled(part int32) bool {
	idx := pq.index[part]
	return idx != invalidIndex && idx < pq.numEnabled
}

// NumEnabledParts returns how many blocks currently participate in
// DeleteMax.
func (pq *KWayPriorityQueue) NumEnabledParts() int32 { return pq.numEnabled }

// NumNonEmptyParts returns how many blocks hold at least one entry,
// enabled or disabled.
func (pq *KWayPriorityQueue) NumNonEmptyParts() int32 { return pq.numNonEmpty }

// Size returns the total number of entries across every block,
// including disabled ones.
func (pq *KWayPriorityQueue) Size() int { return pq.numEntries }

// SizeOfPart returns the number of entries held by part's heap.
func (pq *KWayPriorityQueue) SizeOfPart(part int32) int {
	idx := pq.index[part]
	if idx == invalidIndex || idx >= pq.numNonEmpty {
		return 0
	}
	return pq.queues[idx].size()
}

// Empty reports whether DeleteMax has nothing to return: either no
// block is enabled, or every enabled block is itself empty.
func (pq *KWayPriorityQueue) Empty() bool {
	return pq.numEnabled == 0 || pq.numEntries == 0
}

// EnablePart moves part into the enabled range in O(1), a no-op if
// part is already enabled or has never held an entry.
func (pq *KWayPriorityQueue) EnablePart(part int32) {
	if pq.IsUnused(part) || pq.IsEnabled(part) {
		return
	}
	pq.swap(pq.index[part], pq.numEnabled)
	pq.numEnabled++
}

// DisablePart moves part out of the enabled range in O(1), a no-op if
// part is already disabled.
func (pq *KWayPriorityQueue) DisablePart(part int32) {
	if !pq.IsEnabled(part) {
		return
	}
	pq.numEnabled--
	pq.swap(pq.index[part], pq.numEnabled)
}

// markUnused eager-clears part's heap once it has been swapped past
// the non-empty boundary, so a later Insert into the same slot (now
// possibly owned by a different part) doesn't see stale entries.
func (pq *KWayPriorityQueue) markUnused(part int32) {
	idx := pq.index[part]
	if idx != invalidIndex {
		pq.queues[idx].clear()
	}
}

// Insert adds (id, key) to part's heap, giving part its first slot in
// the non-empty range if it doesn't have one yet. The caller is
// responsible for calling EnablePart if the entry should be visible to
// DeleteMax immediately.
func (pq *KWayPriorityQueue) Insert(id int32, part int32, key int64) error {
	if err := pq.checkPart(part); err != nil {
		return err
	}
	if pq.IsUnused(part) {
		if pq.index[part] == invalidIndex {
			if stale := pq.partAt[pq.numNonEmpty]; stale != invalidPart {
				pq.index[stale] = invalidIndex
			}
			pq.index[part] = pq.numNonEmpty
			pq.partAt[pq.numNonEmpty] = part
		} else {
			pq.swap(pq.index[part], pq.numNonEmpty)
		}
		pq.numNonEmpty++
	}
	pq.queues[pq.index[part]].push(id, key)
	pq.numEntries++
	return nil
}

// maxIndex returns the enabled slot holding the globally maximum key,
// the lowest-index slot winning ties.
func (pq *KWayPriorityQueue) maxIndex() int32 {
	best := int32(0)
	bestKey := pq.queues[0].topKey()
	for i := int32(1); i < pq.numEnabled; i++ {
		if k := pq.queues[i].topKey(); k > bestKey {
			bestKey, best = k, i
		}
	}
	return best
}

// maxIndexRandomTieBreaking is maxIndex but picks uniformly at random
// among every enabled slot whose top key equals the global maximum.
func (pq *KWayPriorityQueue) maxIndexRandomTieBreaking() int32 {
	bestKey := int64(math.MinInt64)
	var candidates []int32
	for i := int32(0); i < pq.numEnabled; i++ {
		k := pq.queues[i].topKey()
		switch {
		case k > bestKey:
			bestKey = k
			candidates = candidates[:0]
			candidates = append(candidates, i)
		case k == bestKey:
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[pq.rng.Intn(len(candidates))]
}

// shrinkAfterEmptyingSlot is the two-swap dance every deleting method
// performs once a block's heap empties: drop out of the enabled range
// (if it was enabled), then drop out of the non-empty range, leaving
// the block unused.
func (pq *KWayPriorityQueue) shrinkAfterEmptyingSlot(part int32) {
	if pq.IsEnabled(part) {
		pq.numEnabled--
		pq.swap(pq.index[part], pq.numEnabled)
	}
	pq.numNonEmpty--
	pq.swap(pq.index[part], pq.numNonEmpty)
	pq.markUnused(part)
}

// DeleteMax removes and returns the globally maximum-gain entry among
// enabled blocks.
func (pq *KWayPriorityQueue) DeleteMax() (id int32, key int64, part int32, err error) {
	if pq.numEnabled == 0 {
		return 0, 0, 0, ErrNoEnabledQueues
	}
	var maxIdx int32
	if pq.randomTies {
		maxIdx = pq.maxIndexRandomTieBreaking()
	} else {
		maxIdx = pq.maxIndex()
	}
	part = pq.partAt[maxIdx]
	id, key = pq.queues[maxIdx].pop()
	if pq.queues[pq.index[part]].empty() {
		pq.shrinkAfterEmptyingSlot(part)
	}
	pq.numEntries--
	return id, key, part, nil
}

// DeleteMaxFromPart removes and returns the maximum-gain entry of a
// specific enabled block.
func (pq *KWayPriorityQueue) DeleteMaxFromPart(part int32) (id int32, key int64, err error) {
	if err := pq.checkPart(part); err != nil {
		return 0, 0, err
	}
	if !pq.IsEnabled(part) {
		return 0, 0, fmt.Errorf("gainpq: %w: %d", ErrNoEnabledQueues, part)
	}
	id, key = pq.queues[pq.index[part]].pop()
	if pq.queues[pq.index[part]].empty() {
		pq.shrinkAfterEmptyingSlot(part)
	}
	pq.numEntries--
	return id, key, nil
}

// Key returns the current gain of id within part's heap.
func (pq *KWayPriorityQueue) Key(id int32, part int32) (int64, error) {
	if err := pq.checkPart(part); err != nil {
		return 0, err
	}
	idx := pq.index[part]
	if idx == invalidIndex || idx >= pq.numNonEmpty {
		return 0, fmt.Errorf("gainpq: %w", ErrNotFound)
	}
	key, ok := pq.queues[idx].keyOf(id)
	if !ok {
		return 0, fmt.Errorf("gainpq: %w", ErrNotFound)
	}
	return key, nil
}

// Contains reports whether id is currently stored in part's heap.
func (pq *KWayPriorityQueue) Contains(id int32, part int32) bool {
	idx := pq.index[part]
	return idx != invalidIndex && idx < pq.numNonEmpty && pq.queues[idx].contains(id)
}

// ContainsAny reports whether id is stored in any block's heap.
// Intended for assertions, not the hot path: it scans every non-empty
// block.
func (pq *KWayPriorityQueue) ContainsAny(id int32) bool {
	for i := int32(0); i < pq.numNonEmpty; i++ {
		if pq.queues[i].contains(id) {
			return true
		}
	}
	return false
}

// UpdateKey sets id's gain within part's heap to key.
func (pq *KWayPriorityQueue) UpdateKey(id int32, part int32, key int64) error {
	idx := pq.index[part]
	if idx == invalidIndex || idx >= pq.numNonEmpty {
		return fmt.Errorf("gainpq: %w", ErrNotFound)
	}
	pq.queues[idx].updateKey(id, key)
	return nil
}

// UpdateKeyBy adds delta to id's gain within part's heap, as used by
// the FM refiner's delta-gain update after a neighboring move.
func (pq *KWayPriorityQueue) UpdateKeyBy(id int32, part int32, delta int64) error {
	idx := pq.index[part]
	if idx == invalidIndex || idx >= pq.numNonEmpty {
		return fmt.Errorf("gainpq: %w", ErrNotFound)
	}
	pq.queues[idx].updateKeyBy(id, delta)
	return nil
}

// Remove drops id from part's heap, shrinking the block out of the
// non-empty (and, if necessary, enabled) range when it becomes empty.
func (pq *KWayPriorityQueue) Remove(id int32, part int32) error {
	idx := pq.index[part]
	if idx == invalidIndex || idx >= pq.numNonEmpty || !pq.queues[idx].contains(id) {
		return fmt.Errorf("gainpq: %w", ErrNotFound)
	}
	pq.queues[idx].remove(id)
	if pq.queues[pq.index[part]].empty() {
		pq.shrinkAfterEmptyingSlot(part)
	}
	pq.numEntries--
	return nil
}

// Clear empties every block and resets the permutation to its initial
// all-unused state.
func (pq *KWayPriorityQueue) Clear() {
	for i := range pq.queues {
		pq.queues[i].clear()
		pq.index[i] = invalidIndex
		pq.partAt[i] = invalidPart
	}
	pq.numEntries = 0
	pq.numNonEmpty = 0
	pq.numEnabled = 0
}
