package gainpq

// entry is one (vertex, gain) pair stored in a block's heap.
type entry struct {
	id  int32
	key int64
}

// maxHeap is a binary max-heap over entry.key with an id->slot index so
// updateKey/remove/contains run in O(log n) instead of O(n). Eager
// clearing on empty (see clear) keeps a reused slot's backing array from
// retaining stale entries across unrelated blocks.
type maxHeap struct {
	data []entry
	pos  map[int32]int
}

func newMaxHeap() *maxHeap {
	return &maxHeap{pos: make(map[int32]int)}
}

func (h *maxHeap) size() int   { return len(h.data) }
func (h *maxHeap) empty() bool { return len(h.data) == 0 }

func (h *maxHeap) contains(id int32) bool {
	_, ok := h.pos[id]
	return ok
}

func (h *maxHeap) top() (id int32, key int64) {
	e := h.data[0]
	return e.id, e.key
}

func (h *maxHeap) topKey() int64 { return h.data[0].key }

func (h *maxHeap) push(id int32, key int64) {
	h.data = append(h.data, entry{id: id, key: key})
	i := len(h.data) - 1
	h.pos[id] = i
	h.siftUp(i)
}

func (h *maxHeap) pop() (id int32, key int64) {
	id, key = h.top()
	h.removeAt(0)
	return id, key
}

func (h *maxHeap) remove(id int32) {
	i, ok := h.pos[id]
	if !ok {
		return
	}
	h.removeAt(i)
}

func (h *maxHeap) removeAt(i int) {
	last := len(h.data) - 1
	removed := h.data[i]
	delete(h.pos, removed.id)
	if i != last {
		h.data[i] = h.data[last]
		h.pos[h.data[i].id] = i
	}
	h.data = h.data[:last]
	if i < len(h.data) {
		h.siftDown(i)
		h.siftUp(i)
	}
}

func (h *maxHeap) updateKey(id int32, key int64) {
	i, ok := h.pos[id]
	if !ok {
		return
	}
	old := h.data[i].key
	h.data[i].key = key
	if key > old {
		h.siftUp(i)
	} else if key < old {
		h.siftDown(i)
	}
}

func (h *maxHeap) updateKeyBy(id int32, delta int64) {
	i, ok := h.pos[id]
	if !ok {
		return
	}
	h.updateKey(id, h.data[i].key+delta)
}

func (h *maxHeap) keyOf(id int32) (int64, bool) {
	i, ok := h.pos[id]
	if !ok {
		return 0, false
	}
	return h.data[i].key, true
}

// clear drops every entry. Called when a block's heap empties out and
// the block transitions to unused, so a later reuse of the same slot by
// a different block starts from a clean map.
func (h *maxHeap) clear() {
	h.data = h.data[:0]
	h.pos = make(map[int32]int)
}

func (h *maxHeap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i].id] = i
	h.pos[h.data[j].id] = j
}

func (h *maxHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent].key >= h.data[i].key {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *maxHeap) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.data[left].key > h.data[largest].key {
			largest = left
		}
		if right < n && h.data[right].key > h.data[largest].key {
			largest = right
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}
}
