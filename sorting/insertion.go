package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Insertion sorts s in place using insertion sort.
// Time complexity: O(n²) worst case, O(n) when s is already sorted.
func Insertion[T sortable.Lesser[T]](s []T) {
	InsertionFunc(s, sortable.Less[T])
}

// InsertionFunc sorts s in place using insertion sort ordered by less.
// Each element is moved left through adjacent swaps past every larger
// predecessor.
func InsertionFunc[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
