// Package bst implements an unbalanced binary search tree over a
// [github.com/amp-labs/amp-algorithms/sortable.Sortable] element type,
// together with a lazy, double-ended in-order iterator.
//
// The tree stores each element at most once: inserting an element that is
// already present is a no-op. Deleting a node with two children relocates its
// in-order predecessor (the maximum of its left subtree) into its place.
// No rebalancing is performed, so the shape, and therefore the cost of every
// operation, depends on insertion order.
//
// Example:
//
//	tree := bst.FromSlice(sortable.Ints(10, 5, 15, 4, 6)...)
//	tree.Delete(5)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 4, 6, 10, 15
//	}
//
//	it := tree.Iter()
//	lo, _ := it.Next()     // 4
//	hi, _ := it.NextBack() // 15
//
// A Tree is not safe for concurrent use. An Iterator borrows its tree: the
// tree must not be mutated while the iterator is in use, and an iterator
// advanced after such a mutation panics.
package bst
