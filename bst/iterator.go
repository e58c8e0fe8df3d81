package bst

import (
	"github.com/amp-labs/amp-algorithms/assert"
	"github.com/amp-labs/amp-algorithms/sortable"
)

// Iterator walks a tree in order, from the front (ascending, Next) and from
// the back (descending, NextBack), without copying the tree.
//
// Each end keeps its own path stack of edges whose node has been reached but
// not yet yielded. A stack is built lazily on the first call for its end, by
// descending from the root towards the smallest (front) or largest (back)
// element. Yielding a node pops it and pushes the path towards the nearest
// remaining element in its opposite subtree.
//
// Both ends can be mixed freely. The iterator counts the elements that have
// not been yielded from either end; when the two ends meet the count reaches
// zero and the iterator is exhausted at both ends. Exhaustion is permanent.
//
// The tree must not be mutated while an iterator is in use. Advancing an
// iterator after its tree was mutated panics with an error wrapping
// errors.ErrInvariantViolated.
type Iterator[T sortable.Sortable[T]] struct {
	tree *Tree[T]

	front      []*edge[T]
	back       []*edge[T]
	frontReady bool
	backReady  bool

	remaining int
	version   uint64
}

// Next returns the smallest element not yet yielded from either end.
// The second result is false once the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	return it.advance(&it.front, &it.frontReady, left)
}

// NextBack returns the largest element not yet yielded from either end.
// The second result is false once the iterator is exhausted.
func (it *Iterator[T]) NextBack() (T, bool) {
	return it.advance(&it.back, &it.backReady, right)
}

// Len returns the number of elements still to be yielded.
func (it *Iterator[T]) Len() int {
	return it.remaining
}

// advance pops the next edge from path. toward is the direction that leads
// to the next element for this end: left for ascending, right for descending.
func (it *Iterator[T]) advance(path *[]*edge[T], ready *bool, toward direction) (T, bool) {
	if it.remaining == 0 {
		it.front, it.back = nil, nil

		var zero T

		return zero, false
	}

	assert.Invariant(it.version == it.tree.version, "tree modified during iteration")

	if !*ready {
		*path = descend(*path, &it.tree.root, toward)
		*ready = true
	}

	stack := *path
	assert.Invariant(len(stack) > 0, "iterator path is empty with %d elements remaining", it.remaining)

	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]

	assert.Invariant(!top.empty(), "empty edge in iterator path")

	*path = descend(stack, top.child(toward.opposite()), toward)
	it.remaining--

	return top.node.value, true
}

// descend pushes from and every edge reached by repeatedly following dir,
// stopping at the first empty edge.
func descend[T sortable.Sortable[T]](path []*edge[T], from *edge[T], dir direction) []*edge[T] {
	for current := from; !current.empty(); current = current.child(dir) {
		path = append(path, current)
	}

	return path
}
