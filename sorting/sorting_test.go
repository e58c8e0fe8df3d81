package sorting

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var routines = map[string]func([]sortable.Int){ //nolint:gochecknoglobals
	"selection": Selection[sortable.Int],
	"insertion": Insertion[sortable.Int],
	"merge":     Merge[sortable.Int],
	"heap":      Heap[sortable.Int],
}

func inputs() map[string][]int {
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	random := make([]int, 257)
	for i := range random {
		random[i] = rng.IntN(100) - 50
	}

	ascending := make([]int, 64)
	descending := make([]int, 64)

	for i := range ascending {
		ascending[i] = i
		descending[i] = 64 - i
	}

	return map[string][]int{
		"empty":          {},
		"single":         {42},
		"two reversed":   {2, 1},
		"mixed":          {7, 2, 9, 10, 4, 6, 1},
		"random":         random,
		"already sorted": ascending,
		"reverse sorted": descending,
		"all equal":      {5, 5, 5, 5, 5, 5, 5},
		"duplicates":     {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		"negatives":      {0, -1, 1, -100, 100, -1},
	}
}

func TestSortRoutines(t *testing.T) {
	t.Parallel()

	for routineName, routine := range routines {
		for inputName, input := range inputs() {
			t.Run(routineName+"/"+inputName, func(t *testing.T) {
				t.Parallel()

				data := sortable.Ints(input...)
				want := slices.Clone(data)
				slices.Sort(want)

				routine(data)

				assert.Equal(t, want, data)
				assert.True(t, IsSorted(data))
			})
		}
	}
}

func TestSortEmptyIsNoOp(t *testing.T) {
	t.Parallel()

	for name, routine := range routines {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			empty := []sortable.Int{}
			routine(empty)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			var nilSlice []sortable.Int

			routine(nilSlice)
			assert.Nil(t, nilSlice)

			single := sortable.Ints(42)
			routine(single)
			assert.Equal(t, sortable.Ints(42), single)
		})
	}
}

func TestSortFuncVariants(t *testing.T) {
	t.Parallel()

	less := func(a, b string) bool { return a < b }
	funcs := map[string]func([]string, func(a, b string) bool){
		"selection": SelectionFunc[string],
		"insertion": InsertionFunc[string],
		"merge":     MergeFunc[string],
		"heap":      HeapFunc[string],
	}

	for name, sortFunc := range funcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			words := []string{"pear", "fig", "apple", "kiwi", "fig"}
			sortFunc(words, less)

			assert.Equal(t, []string{"apple", "fig", "fig", "kiwi", "pear"}, words)
		})
	}
}

func TestSortDescending(t *testing.T) {
	t.Parallel()

	greater := func(a, b int) bool { return a > b }
	data := []int{1, 5, 2, 4, 3}

	HeapFunc(data, greater)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, data)
	assert.True(t, IsSortedFunc(data, greater))
}

func TestStableAlgorithms(t *testing.T) {
	t.Parallel()

	type record struct {
		key   int
		label string
	}

	byKey := func(a, b record) bool { return a.key < b.key }

	var stable []Algorithm

	for _, alg := range Algorithms() {
		if alg.Stable() {
			stable = append(stable, alg)
		}
	}

	require.Equal(t, []Algorithm{InsertionSort, MergeSort}, stable)

	for _, alg := range stable {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			data := []record{
				{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}, {1, "g"},
			}

			require.NoError(t, SortFunc(alg, data, byKey))

			labels := make([]string, len(data))
			for i, r := range data {
				labels[i] = r.label
			}

			assert.Equal(t, []string{"e", "b", "d", "g", "a", "c", "f"}, labels)
		})
	}
}

func TestNaturalStrings(t *testing.T) {
	t.Parallel()

	files := []sortable.NaturalString{"file10", "file2", "file1"}
	Insertion(files)

	assert.Equal(t, []sortable.NaturalString{"file1", "file2", "file10"}, files)

	// Numerically equal runs fall back to bytewise order, whatever the input order.
	for _, input := range [][]sortable.NaturalString{{"x1", "x01", "x2"}, {"x01", "x2", "x1"}} {
		for name, sortFunc := range map[string]func([]sortable.NaturalString){
			"heap":  Heap[sortable.NaturalString],
			"merge": Merge[sortable.NaturalString],
		} {
			data := slices.Clone(input)
			sortFunc(data)
			assert.Equal(t, []sortable.NaturalString{"x01", "x1", "x2"}, data, name)
		}
	}
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSorted([]sortable.Int{}))
	assert.True(t, IsSorted(sortable.Ints(1, 1, 2)))
	assert.False(t, IsSorted(sortable.Ints(2, 1)))
}

func TestHeapLargeRandom(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7)) //nolint:gosec
	data := make([]sortable.Int, 5000)

	for i := range data {
		data[i] = sortable.Int(rng.Int())
	}

	want := slices.Clone(data)
	slices.Sort(want)

	Heap(data)
	require.Equal(t, want, data)
}
