package scale

import (
	"errors"
	"fmt"
)

// Standard errors for encoding and decoding validation.
//
// Every failure raised by this package and the packages built on it wraps one
// of these sentinels, so callers can classify failures with errors.Is without
// parsing messages.
var (
	// ErrFormat reports structurally invalid input: a bad magic tag, an
	// unknown discriminant, a non-minimal compact mode, an unsupported
	// version byte.
	ErrFormat = errors.New("malformed encoding")

	// ErrBounds reports a read past the end of the buffer, or a declared
	// length that exceeds the remaining input.
	ErrBounds = errors.New("out of bounds")

	// ErrRange reports a value outside the representable range of its
	// target width.
	ErrRange = errors.New("value out of range")

	// ErrPrecision reports a decoded magnitude wider than the widest
	// native integer the call can return.
	ErrPrecision = errors.New("value exceeds precision")

	// ErrResolution reports a name or type id that is absent from a parsed
	// registry. Callers may recover from it with a static fallback table;
	// it is never substituted silently.
	ErrResolution = errors.New("not found in registry")

	// ErrArithmetic reports balance overflow or underflow. Arithmetic
	// never wraps.
	ErrArithmetic = errors.New("arithmetic overflow")
)

// MaxAlloc limits a single decoded allocation, so a corrupt or hostile
// length prefix cannot trigger OOM before the bounds check trips.
const MaxAlloc = 100 * 1024

func boundsErr(offset, need, remaining int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, %d remaining", ErrBounds, need, offset, remaining)
}

func formatErr(offset int, what string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrFormat, what, offset)
}
