package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
	assert.Equal(t, 42, opt.GetOrPanic())
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Zero(t, val)
	assert.PanicsWithValue(t, "called GetOrPanic on None", func() { opt.GetOrPanic() })
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var opt Value[string]
	assert.True(t, opt.Empty())
}
