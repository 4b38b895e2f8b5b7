package hmetis

import "fmt"

// ErrInvalidInput is returned for a malformed hypergraph file or
// inconsistent pin/edge counts.
var ErrInvalidInput = fmt.Errorf("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("hmetis: %w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
