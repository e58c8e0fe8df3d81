package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T sortable.Lesser[T]](s []T) bool {
	return IsSortedFunc(s, sortable.Less[T])
}

// IsSortedFunc reports whether s is in non-decreasing order according to less.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
