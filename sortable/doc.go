// Package sortable provides the ordering capability used throughout the module
// and wrapper types for primitive types that implement it.
//
// # Overview
//
// Two interfaces describe what an element type must offer:
//
//   - [Lesser] is a strict less-than. The sorting routines in
//     [github.com/amp-labs/amp-algorithms/sorting] only need this.
//   - [Sortable] adds equality from [github.com/amp-labs/amp-algorithms/compare.Comparable]
//     and describes a total order. The ordered tree in
//     [github.com/amp-labs/amp-algorithms/bst] requires it, because it must tell
//     "equal, stop here" apart from "go left" and "go right".
//
// Ready-made wrappers: [Int], [Byte], [String], [NaturalString] and [Float64].
//
// # Usage
//
//	values := sortable.Ints(42, 10, 25)
//	sorting.Heap(values)
//	// values is now 10, 25, 42
//
//	tree := bst.FromSlice(values...)
//	for v := range tree.Backward() {
//	    fmt.Println(int(v)) // 42, 25, 10
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals and LessThan must agree: for any pair exactly one of a < b, b < a
// and a == b holds. The tree relies on this to keep its search invariant.
package sortable
