package sortable

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be sorted
// by the sorting routines and stored in a bst.Tree.
//
// Example:
//
//	tree := bst.New[sortable.Int]()
//	tree.Insert(sortable.Int(5))
//	tree.Insert(sortable.Int(3))
//	tree.Insert(sortable.Int(7))
//	// Iterating yields: 3, 5, 7 (sorted order)
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Ints converts a slice of ints into a freshly allocated slice of Int.
func Ints(values ...int) []Int {
	out := make([]Int, len(values))
	for i, v := range values {
		out[i] = Int(v)
	}

	return out
}
