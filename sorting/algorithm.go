package sorting

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-algorithms/errors"
)

// Algorithm names one of the sorting routines in this package, so that callers
// can pick a routine from configuration.
type Algorithm uint8

const (
	SelectionSort Algorithm = iota + 1
	InsertionSort
	MergeSort
	HeapSort
)

var algorithmNames = map[Algorithm]string{ //nolint:gochecknoglobals
	SelectionSort: "selection",
	InsertionSort: "insertion",
	MergeSort:     "merge",
	HeapSort:      "heap",
}

// Algorithms returns every known algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{SelectionSort, InsertionSort, MergeSort, HeapSort}
}

// String returns the short lowercase name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a names a known routine.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]

	return ok
}

// Stable reports whether the routine preserves the relative order of equal
// elements.
func (a Algorithm) Stable() bool {
	return a == MergeSort || a == InsertionSort
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// ParseAlgorithm resolves a name such as "heap", "Heap-Sort" or "heapsort".
// Matching ignores case, surrounding whitespace and a trailing "sort".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimRight(key, "-_ ")

	for _, alg := range Algorithms() {
		if algorithmNames[alg] == key {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, name)
}

// ParseAlgorithms resolves a list of names, reporting every unknown one.
func ParseAlgorithms(names ...string) ([]Algorithm, error) {
	var errs errors.Collection

	out := make([]Algorithm, 0, len(names))

	for _, name := range names {
		alg, err := ParseAlgorithm(name)
		if err != nil {
			errs.Add(err)

			continue
		}

		out = append(out, alg)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return out, nil
}

// SortFunc sorts s in place with the routine named by alg.
// It returns an error wrapping errors.ErrUnknownAlgorithm, leaving s
// untouched, when alg is not a known routine.
func SortFunc[T any](alg Algorithm, s []T, less func(a, b T) bool) error {
	switch alg {
	case SelectionSort:
		SelectionFunc(s, less)
	case InsertionSort:
		InsertionFunc(s, less)
	case MergeSort:
		MergeFunc(s, less)
	case HeapSort:
		HeapFunc(s, less)
	default:
		return fmt.Errorf("%w: %d", errors.ErrUnknownAlgorithm, uint8(alg))
	}

	return nil
}
