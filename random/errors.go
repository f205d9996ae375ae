package random

import (
	"errors"
	"fmt"
)

// Contract-violation conditions. These are programmer errors, deterministic
// in the arguments and never dependent on generator state, so the package
// raises them as panics at the offending call. The recovered value wraps one
// of these sentinels and can be classified with errors.Is.
var (
	// ErrInvalidArgument reports a nil or absent input, such as an empty
	// seed key or a nil byte buffer.
	ErrInvalidArgument = errors.New("random: invalid argument")

	// ErrInvalidRange reports a malformed bound: min >= max in a ranged
	// draw, or a negative integer bound.
	ErrInvalidRange = errors.New("random: invalid range")
)

func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
