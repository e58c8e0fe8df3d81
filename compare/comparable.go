// Package compare provides the equality and ordering vocabulary shared by the
// sorting routines and the ordered tree.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	// Less means the left operand sorts before the right one.
	Less Ordering = -1
	// Equal means neither operand sorts before the other.
	Equal Ordering = 0
	// Greater means the left operand sorts after the right one.
	Greater Ordering = 1
)

// String returns a human-readable representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "not recognized"
	}
}
