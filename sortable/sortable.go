package sortable

import (
	"github.com/amp-labs/amp-algorithms/compare"
)

// Lesser is the minimal ordering capability: a strict less-than.
// It is all the sorting routines need.
type Lesser[T any] interface {
	LessThan(other T) bool
}

// Sortable is a total order: equality plus strict less-than. Implementations
// must keep the two consistent, so that for any a and b exactly one of
// a.LessThan(b), b.LessThan(a), a.Equals(b) holds.
type Sortable[T any] interface {
	compare.Comparable[T]
	Lesser[T]
}

// Compare returns the three-way ordering of a relative to b.
// Equality is decided by Equals, not by the absence of LessThan in both
// directions.
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.Equals(b):
		return compare.Equal
	case a.LessThan(b):
		return compare.Less
	default:
		return compare.Greater
	}
}

// Less adapts the LessThan method to a plain function, for use with the
// *Func variants of the sorting routines.
func Less[T Lesser[T]](a, b T) bool {
	return a.LessThan(b)
}
