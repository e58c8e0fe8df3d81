package sortable

import "cmp"

// Float64 is a sortable wrapper for float64. NaN is ordered before every other
// value and is equal to itself, which keeps the order total.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals reports whether both values compare equal under cmp.Compare.
func (f Float64) Equals(other Float64) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan reports whether f sorts before other under cmp.Less.
func (f Float64) LessThan(other Float64) bool {
	return cmp.Less(float64(f), float64(other))
}
