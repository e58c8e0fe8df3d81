// Package errors holds the sentinel errors of the module and a small
// multi-error accumulator.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolated marks a broken internal invariant, i.e. a bug in the
	// data structure itself rather than caller misuse. It is carried by the
	// panics raised from assert.Invariant and by bst.Tree.Validate.
	ErrInvariantViolated = errors.New("invariant violated")

	// ErrUnknownAlgorithm is returned when a sorting algorithm name cannot be resolved.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrSortFailed is returned when a sort produced output that is not a
	// sorted permutation of its input.
	ErrSortFailed = errors.New("sort failed")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple checks and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf formats a message, wraps sentinel with it and appends the result.
func (c *Collection) Addf(sentinel error, format string, args ...any) {
	c.errors = append(c.errors, fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
