package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Heap sorts s in place using heap sort.
// Time complexity: O(n log n) in all cases. Space: O(1).
func Heap[T sortable.Lesser[T]](s []T) {
	HeapFunc(s, sortable.Less[T])
}

// HeapFunc sorts s in place using heap sort ordered by less.
//
// A max-heap is built bottom-up starting from the parent of the last index.
// The root is then repeatedly swapped with the end of the heap, the heap
// shrinks by one and the new root is sifted down.
func HeapFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	last := len(s) - 1

	for i := parent(last); i >= 0; i-- {
		siftDown(s, i, last, less)
	}

	for end := last; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end-1, less)
	}
}

func parent(i int) int     { return (i - 1) / 2 }
func leftChild(i int) int  { return 2*i + 1 }
func rightChild(i int) int { return 2*i + 2 }

// siftDown restores the heap property for the subtree rooted at root within
// the inclusive range [0..end]. The larger child is promoted; on ties the
// root stays unless a child is strictly greater.
func siftDown[T any](s []T, root, end int, less func(a, b T) bool) {
	for leftChild(root) <= end {
		candidate := root

		if l := leftChild(root); less(s[candidate], s[l]) {
			candidate = l
		}

		if r := rightChild(root); r <= end && less(s[candidate], s[r]) {
			candidate = r
		}

		if candidate == root {
			return
		}

		s[root], s[candidate] = s[candidate], s[root]
		root = candidate
	}
}
