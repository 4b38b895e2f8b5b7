package config

import "fmt"

// ErrInvalidConfiguration is returned for an unknown enum string,
// ε≤0, k<2, or v-cycles combined with recursive-bisection mode.
var ErrInvalidConfiguration = fmt.Errorf("invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
