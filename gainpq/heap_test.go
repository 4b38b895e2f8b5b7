package gainpq

import "testing"

func TestMaxHeap_PushPopOrder(t *testing.T) {
	h := newMaxHeap()
	h.push(1, 5)
	h.push(2, 9)
	h.push(3, 1)
	h.push(4, 7)

	want := []int64{9, 7, 5, 1}
	for _, w := range want {
		if h.empty() {
			t.Fatalf("heap emptied early, expected key %d", w)
		}
		_, key := h.pop()
		if key != w {
			t.Fatalf("pop() = %d, want %d", key, w)
		}
	}
	if !h.empty() {
		t.Fatalf("expected empty heap")
	}
}

func TestMaxHeap_RemoveMiddle(t *testing.T) {
	h := newMaxHeap()
	h.push(1, 5)
	h.push(2, 9)
	h.push(3, 1)
	h.remove(2)
	if h.contains(2) {
		t.Fatalf("expected id 2 removed")
	}
	if h.size() != 2 {
		t.Fatalf("size = %d, want 2", h.size())
	}
	_, key := h.top()
	if key != 5 {
		t.Fatalf("top key = %d, want 5", key)
	}
}

func TestMaxHeap_UpdateKey(t *testing.T) {
	h := newMaxHeap()
	h.push(1, 1)
	h.push(2, 2)
	h.updateKey(1, 100)
	id, key := h.top()
	if id != 1 || key != 100 {
		t.Fatalf("top = (%d,%d), want (1,100)", id, key)
	}
	h.updateKey(1, -100)
	id, _ = h.top()
	if id != 2 {
		t.Fatalf("top id = %d, want 2", id)
	}
}
