package bst

import (
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/optional"
)

// bounds is an exclusive (low, high) range every element of a subtree must
// fall within.
type bounds[T any] struct {
	low, high optional.Value[T]
}

// Validate checks the structural invariants of the tree: strict ordering
// within every subtree, no node owned twice and a size matching the number
// of reachable nodes. Every violation is reported; each wraps
// errors.ErrInvariantViolated. Returns nil for a well-formed tree.
//
// The tree's own operations never produce a malformed tree; Validate exists
// for tests and for debugging code that builds trees by other means.
// Time complexity: O(n).
func (t *Tree[T]) Validate() error {
	type frame struct {
		slot   *edge[T]
		within bounds[T]
	}

	var errs errors.Collection

	seen := make(map[*node[T]]struct{}, t.size)
	stack := []frame{{slot: &t.root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.slot.empty() {
			continue
		}

		n := top.slot.node
		if _, dup := seen[n]; dup {
			errs.Addf(errors.ErrInvariantViolated, "node %v is owned by more than one edge", n.value)

			continue
		}

		seen[n] = struct{}{}

		if low, ok := top.within.low.Get(); ok && !low.LessThan(n.value) {
			errs.Addf(errors.ErrInvariantViolated, "node %v is not greater than ancestor %v", n.value, low)
		}

		if high, ok := top.within.high.Get(); ok && !n.value.LessThan(high) {
			errs.Addf(errors.ErrInvariantViolated, "node %v is not less than ancestor %v", n.value, high)
		}

		stack = append(stack,
			frame{slot: &n.left, within: bounds[T]{low: top.within.low, high: optional.Some(n.value)}},
			frame{slot: &n.right, within: bounds[T]{low: optional.Some(n.value), high: top.within.high}},
		)
	}

	if len(seen) != t.size {
		errs.Addf(errors.ErrInvariantViolated, "size is %d but %d nodes are reachable", t.size, len(seen))
	}

	return errs.GetError()
}
