package partition

import "fmt"

// ErrInvalidConfig is returned for the subset of checks this package
// alone can make (k, epsilon, the v-cycles/recursive-bisection
// conflict).
var ErrInvalidConfig = fmt.Errorf("invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("partition: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
