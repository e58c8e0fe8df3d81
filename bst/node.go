package bst

import "github.com/amp-labs/amp-algorithms/sortable"

// node holds one element and exclusively owns its two child edges.
type node[T sortable.Sortable[T]] struct {
	value T
	left  edge[T]
	right edge[T]
}

// edge is an ownership slot holding at most one node. All structural
// mutation happens by rewriting edges: insert fills an empty edge, delete
// empties or replaces one.
type edge[T sortable.Sortable[T]] struct {
	node *node[T]
}

func (e *edge[T]) empty() bool {
	return e.node == nil
}

// take detaches the owned node, leaving the edge empty. The node keeps its
// own children.
func (e *edge[T]) take() *node[T] {
	n := e.node
	e.node = nil

	return n
}

// set makes the edge own n, which may be nil.
func (e *edge[T]) set(n *node[T]) {
	e.node = n
}

// child returns the left or right edge of the owned node.
func (e *edge[T]) child(dir direction) *edge[T] {
	if dir == left {
		return &e.node.left
	}

	return &e.node.right
}

// direction selects a child edge. The iterator descends in one direction and
// resumes in the opposite one.
type direction bool

const (
	left  direction = false
	right direction = true
)

func (d direction) opposite() direction {
	return !d
}
