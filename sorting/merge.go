package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Merge sorts s in place using top-down merge sort. The sort is stable.
// Time complexity: O(n log n). Space: one auxiliary buffer of len(s).
func Merge[T sortable.Lesser[T]](s []T) {
	MergeFunc(s, sortable.Less[T])
}

// MergeFunc sorts s in place using merge sort ordered by less.
func MergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	m := merger[T]{
		data: s,
		aux:  make([]T, len(s)),
		less: less,
	}

	m.sort(0, len(s)-1)
}

// merger carries the state shared by every recursive step. The auxiliary
// buffer is allocated once; each merge refreshes only its own [low..high]
// segment from the live slice.
type merger[T any] struct {
	data []T
	aux  []T
	less func(a, b T) bool
}

// sort orders the inclusive range [low..high].
func (m *merger[T]) sort(low, high int) {
	if low >= high {
		return
	}

	mid := low + (high-low)/2

	m.sort(low, mid)
	m.sort(mid+1, high)
	m.merge(low, mid, high)
}

// merge combines the sorted runs [low..mid] and [mid+1..high].
// On ties the element from the left run is taken first.
func (m *merger[T]) merge(low, mid, high int) {
	copy(m.aux[low:high+1], m.data[low:high+1])

	left, right := low, mid+1

	for out := low; out <= high; out++ {
		switch {
		case left > mid:
			m.data[out] = m.aux[right]
			right++
		case right > high || !m.less(m.aux[right], m.aux[left]):
			m.data[out] = m.aux[left]
			left++
		default:
			m.data[out] = m.aux[right]
			right++
		}
	}
}
