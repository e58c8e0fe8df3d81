// Package hashing computes order-independent fingerprints of collections.
package hashing

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Multiset is a fingerprint of a collection of values that ignores their
// order but not their multiplicity: two collections get equal fingerprints
// when one is a permutation of the other (barring hash collisions).
//
// The zero value is the fingerprint of the empty collection.
type Multiset struct {
	sum   uint64
	count int
}

// AddUint64 adds v to the fingerprinted collection.
func (m *Multiset) AddUint64(v uint64) {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], v)

	m.sum += xxh3.Hash(buf[:])
	m.count++
}

// AddInt adds v to the fingerprinted collection.
func (m *Multiset) AddInt(v int) {
	m.AddUint64(uint64(v)) //nolint:gosec
}

// Sum returns the fingerprint as a single number.
func (m Multiset) Sum() uint64 {
	return m.sum
}

// Equals reports whether both fingerprints describe the same collection.
func (m Multiset) Equals(other Multiset) bool {
	return m == other
}

// Ints fingerprints a slice of integer-like values.
func Ints[T ~int](values []T) Multiset {
	var m Multiset

	for _, v := range values {
		m.AddInt(int(v))
	}

	return m
}
