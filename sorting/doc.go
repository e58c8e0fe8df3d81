// Package sorting provides four classic in-place comparison sorts: selection,
// insertion, merge and heap sort.
//
// Every routine rearranges its slice into non-decreasing order and returns
// nothing. Empty and single-element slices are left untouched. Each routine
// comes in two flavours:
//
//   - Selection, Insertion, Merge, Heap take a slice of a
//     [github.com/amp-labs/amp-algorithms/sortable.Lesser] element type.
//   - SelectionFunc, InsertionFunc, MergeFunc, HeapFunc take any element
//     type plus a strict less-than function, like [slices.SortFunc].
//
// Example:
//
//	values := sortable.Ints(7, 2, 9, 10, 4, 6, 1)
//	sorting.Merge(values)
//	// values is now 1, 2, 4, 6, 7, 9, 10
//
//	words := []string{"pear", "fig", "apple"}
//	sorting.HeapFunc(words, func(a, b string) bool { return a < b })
//
// Merge and Insertion are stable (see Algorithm.Stable); Selection and Heap
// are not. None of the routines are safe for concurrent use on the same slice.
package sorting
