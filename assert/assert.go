// Package assert provides panicking assertions for programming errors.
//
// True, NotNil and NonEmptySlice can be compiled out with the
// assertions_disabled build tag. Invariant cannot: it guards the internal
// consistency of data structures, where continuing would corrupt state.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-algorithms/errors"
)

// Invariant panics when value is false. The panic value is an error wrapping
// errors.ErrInvariantViolated, so a recovering caller can match it with
// errors.Is. The optional args follow the same formatting rules as True.
func Invariant(value bool, args ...any) {
	if value {
		return
	}

	panic(fmt.Errorf("%w: %s", errors.ErrInvariantViolated, message(args)))
}

// message renders the optional assertion args:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the message.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
