package bst

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-algorithms/assert"
	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/optional"
	"github.com/amp-labs/amp-algorithms/sortable"
)

// Tree is an unbalanced binary search tree holding distinct elements.
// The zero value is an empty tree ready to use.
//
// Every element in a node's left subtree is less than the node's element and
// every element in its right subtree is greater.
type Tree[T sortable.Sortable[T]] struct {
	root edge[T]
	size int

	// version changes on every successful mutation. Iterators compare it
	// against the value they were created with.
	version uint64
}

// New creates a new empty tree.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return &Tree[T]{}
}

// FromSlice creates a tree by inserting values in order. Later duplicates are
// ignored. The insertion order determines the shape of the tree.
func FromSlice[T sortable.Sortable[T]](values ...T) *Tree[T] {
	tree := New[T]()

	for _, v := range values {
		tree.Insert(v)
	}

	return tree
}

// Len returns the number of elements in the tree.
// Time complexity: O(1).
func (t *Tree[T]) Len() int {
	return t.size
}

// find descends from the root and returns the edge holding value, or the
// empty edge where value would be attached.
func (t *Tree[T]) find(value T) *edge[T] {
	current := &t.root

	for !current.empty() {
		switch sortable.Compare(value, current.node.value) {
		case compare.Less:
			current = &current.node.left
		case compare.Greater:
			current = &current.node.right
		case compare.Equal:
			return current
		}
	}

	return current
}

// Insert adds value to the tree as a new leaf. If an equal element is
// already present the tree is left unchanged (the first inserted element
// wins) and Insert returns false.
// Time complexity: O(height).
func (t *Tree[T]) Insert(value T) bool {
	slot := t.find(value)
	if !slot.empty() {
		return false
	}

	slot.set(&node[T]{value: value})
	t.mutated(1)

	return true
}

// Delete removes value from the tree and reports whether it was present.
//
// A leaf is simply detached and a node with one child is replaced by that
// child's subtree. A node with two children is replaced by its in-order
// predecessor, which is unlinked from its original position first.
// Time complexity: O(height).
func (t *Tree[T]) Delete(value T) bool {
	slot := t.find(value)
	if slot.empty() {
		return false
	}

	target := slot.take()
	lesser, greater := target.left.take(), target.right.take()

	switch {
	case lesser == nil:
		slot.set(greater)
	case greater == nil:
		slot.set(lesser)
	default:
		slot.set(relinkPredecessor(lesser, greater))
	}

	t.mutated(-1)

	return true
}

// relinkPredecessor detaches the maximum node of the subtree rooted at
// lesser, promotes that node's left child into its old slot and returns it
// carrying what remains of lesser on its left and greater on its right.
func relinkPredecessor[T sortable.Sortable[T]](lesser, greater *node[T]) *node[T] {
	remaining := edge[T]{node: lesser}
	current := &remaining

	for !current.node.right.empty() {
		current = &current.node.right
	}

	predecessor := current.take()
	assert.Invariant(predecessor.right.empty(), "in-order predecessor %v has a right child", predecessor.value)

	current.set(predecessor.left.take())

	predecessor.left = remaining
	predecessor.right.set(greater)

	return predecessor
}

func (t *Tree[T]) mutated(delta int) {
	t.size += delta
	t.version++
}

// Find returns the stored element equal to value, or None if absent.
// Time complexity: O(height).
func (t *Tree[T]) Find(value T) optional.Value[T] {
	slot := t.find(value)
	if slot.empty() {
		return optional.None[T]()
	}

	return optional.Some(slot.node.value)
}

// Contains reports whether an element equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	return !t.find(value).empty()
}

// Min returns the smallest element, or None for an empty tree.
func (t *Tree[T]) Min() optional.Value[T] {
	return t.extreme(left)
}

// Max returns the largest element, or None for an empty tree.
func (t *Tree[T]) Max() optional.Value[T] {
	return t.extreme(right)
}

func (t *Tree[T]) extreme(dir direction) optional.Value[T] {
	if t.root.empty() {
		return optional.None[T]()
	}

	current := &t.root
	for next := current.child(dir); !next.empty(); next = current.child(dir) {
		current = next
	}

	return optional.Some(current.node.value)
}

// Clear removes every element. Nodes are released with the root edge.
func (t *Tree[T]) Clear() {
	t.root.take()
	t.size = 0
	t.version++
}

// Iter returns a new iterator positioned before the first and after the last
// element. See Iterator.
func (t *Tree[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		tree:      t,
		remaining: t.size,
		version:   t.version,
	}
}

// All returns an iterator over the elements in ascending order.
// This enables Go 1.23+ range-over-func syntax: for v := range tree.All() { ... }
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iter()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iter()

		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns all elements in ascending order as a new slice.
func (t *Tree[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, t.size), t.All())
}

// String renders the elements in ascending order, e.g. "[4 5 7]".
func (t *Tree[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for v := range t.All() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}

		fmt.Fprint(&sb, v)
	}

	sb.WriteByte(']')

	return sb.String()
}
