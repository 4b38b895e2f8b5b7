package flow

import "fmt"

// ErrSourceNotFound is returned when a network's declared source id is
// out of range.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when a network's declared sink id is out
// of range.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when AddEdge is given a negative capacity, a
// typed error carrying structured context alongside the plain sentinels
// above.
type EdgeError struct {
	From, To int32
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d->%d: %d", e.From, e.To, e.Cap)
}
