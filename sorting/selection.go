package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Selection sorts s in place using selection sort.
// Time complexity: O(n²) comparisons regardless of input order.
func Selection[T sortable.Lesser[T]](s []T) {
	SelectionFunc(s, sortable.Less[T])
}

// SelectionFunc sorts s in place using selection sort ordered by less.
// For each position i the minimum of the unsorted suffix s[i:] is swapped
// into place.
func SelectionFunc[T any](s []T, less func(a, b T) bool) {
	for i := range s {
		minIdx := i

		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}

		s[i], s[minIdx] = s[minIdx], s[i]
	}
}
