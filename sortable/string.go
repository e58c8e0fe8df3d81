package sortable

import "facette.io/natsort"

// String orders strings bytewise, like the < operator.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString orders strings naturally: embedded runs of digits compare by
// numeric value, so "file2" sorts before "file10". Strings the natural order
// cannot tell apart, such as "x01" and "x1", fall back to bytewise order.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	if s == other {
		return false
	}

	a, b := string(s), string(other)

	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)
	if less == greater {
		return a < b
	}

	return less
}
