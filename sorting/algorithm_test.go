package sorting

import (
	"testing"

	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Algorithm
	}{
		{input: "selection", expected: SelectionSort},
		{input: "Insertion", expected: InsertionSort},
		{input: "merge-sort", expected: MergeSort},
		{input: " heapsort ", expected: HeapSort},
		{input: "HEAP_SORT", expected: HeapSort},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			alg, err := ParseAlgorithm(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAlgorithm("bogo")
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	})
}

func TestParseAlgorithms(t *testing.T) {
	t.Parallel()

	algs, err := ParseAlgorithms("heap", "merge")
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{HeapSort, MergeSort}, algs)

	_, err = ParseAlgorithms("heap", "bogo", "quantum")
	require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "bogo")
	assert.Contains(t, err.Error(), "quantum")
}

func TestAlgorithmText(t *testing.T) {
	t.Parallel()

	for _, alg := range Algorithms() {
		text, err := alg.MarshalText()
		require.NoError(t, err)

		var parsed Algorithm
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, alg, parsed)
	}

	_, err := Algorithm(0).MarshalText()
	require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}

func TestAlgorithmStable(t *testing.T) {
	t.Parallel()

	assert.True(t, MergeSort.Stable())
	assert.True(t, InsertionSort.Stable())
	assert.False(t, HeapSort.Stable())
	assert.False(t, SelectionSort.Stable())
}

func TestSortFunc(t *testing.T) {
	t.Parallel()

	less := func(a, b int) bool { return a < b }

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			data := []int{3, 1, 2}
			require.NoError(t, SortFunc(alg, data, less))
			assert.Equal(t, []int{1, 2, 3}, data)
		})
	}

	t.Run("unknown leaves input untouched", func(t *testing.T) {
		t.Parallel()

		data := []int{3, 1, 2}
		err := SortFunc(Algorithm(0), data, less)
		require.ErrorIs(t, err, errors.ErrUnknownAlgorithm)
		assert.Equal(t, []int{3, 1, 2}, data)
	})
}
