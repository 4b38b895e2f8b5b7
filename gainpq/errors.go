package gainpq

import "errors"

var (
	// ErrNoEnabledQueues is returned by DeleteMax when every block is
	// disabled or empty.
	ErrNoEnabledQueues = errors.New("gainpq: no enabled queues")
	// ErrPartRange is returned when a part index is outside [0,k).
	ErrPartRange = errors.New("gainpq: part out of range")
	// ErrNotFound is returned by Remove/UpdateKey/UpdateKeyBy/Key when id
	// is not present in the given part's heap.
	ErrNotFound = errors.New("gainpq: id not found in part")
)
