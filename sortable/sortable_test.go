package sortable

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Int
		expected compare.Ordering
	}{
		{name: "less", a: 1, b: 2, expected: compare.Less},
		{name: "greater", a: 3, b: 2, expected: compare.Greater},
		{name: "equal", a: 2, b: 2, expected: compare.Equal},
		{name: "negative", a: -5, b: 0, expected: compare.Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, Less(String("a"), String("b")))
	assert.False(t, Less(String("b"), String("a")))
	assert.False(t, Less(String("a"), String("a")))
}

func TestInts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Int{3, 1, 2}, Ints(3, 1, 2))
	assert.Empty(t, Ints())
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, Byte('a').LessThan(Byte('b')))
	assert.True(t, Byte('z').Equals(Byte('z')))
	assert.False(t, Byte('z').LessThan(Byte('a')))
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	t.Run("numeric runs compare by value", func(t *testing.T) {
		t.Parallel()

		assert.True(t, NaturalString("file2").LessThan("file10"))
		assert.False(t, NaturalString("file10").LessThan("file2"))
	})

	t.Run("bytewise string disagrees", func(t *testing.T) {
		t.Parallel()

		assert.False(t, String("file2").LessThan("file10"))
	})

	t.Run("equal strings are not less", func(t *testing.T) {
		t.Parallel()

		assert.False(t, NaturalString("x1").LessThan("x1"))
		assert.Equal(t, compare.Equal, Compare(NaturalString("x1"), NaturalString("x1")))
	})

	t.Run("leading zeros order bytewise", func(t *testing.T) {
		t.Parallel()

		pairs := [][2]NaturalString{{"x01", "x1"}, {"a007b", "a7b"}, {"v0", "v00"}}

		for _, p := range pairs {
			a, b := p[0], p[1]

			// Exactly one of a<b, b<a, a==b.
			assert.True(t, a.LessThan(b), "%s < %s", a, b)
			assert.False(t, b.LessThan(a), "%s < %s", b, a)
			assert.False(t, a.Equals(b))
			assert.Equal(t, compare.Less, Compare(a, b))
			assert.Equal(t, compare.Greater, Compare(b, a))
		}
	})
}

func TestFloat64(t *testing.T) {
	t.Parallel()

	nan := Float64(math.NaN())

	assert.True(t, Float64(1.5).LessThan(2.5))
	assert.True(t, nan.Equals(nan))
	assert.True(t, nan.LessThan(Float64(math.Inf(-1))))
	assert.Equal(t, compare.Greater, Compare(Float64(0), nan))
}
