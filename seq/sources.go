package seq

import (
	"golang.org/x/exp/constraints"
)

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator[T]) Item() T {
	return it.items[it.pos-1]
}

func (it *sliceIterator[T]) Err() error {
	return nil
}

// FromSlice returns a sequence over items. The slice is not copied:
// every traversal re-reads it, so element mutations between traversals
// are observed.
func FromSlice[T any](items []T) Seq[T] {
	return Func[T](func() Iterator[T] {
		return &sliceIterator[T]{items: items}
	})
}

// Keys returns a sequence over the keys of m. Keys are snapshotted when a
// traversal begins; their order within one traversal follows map
// iteration order and is not stable across traversals.
func Keys[K comparable, V any](m map[K]V) Seq[K] {
	return Func[K](func() Iterator[K] {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return &sliceIterator[K]{items: keys}
	})
}

type rangeIterator[T constraints.Integer] struct {
	next, to T
	started  bool
}

func (it *rangeIterator[T]) Next() bool {
	if it.started {
		it.next++
	}
	it.started = true
	return it.next < it.to
}

func (it *rangeIterator[T]) Item() T {
	return it.next
}

func (it *rangeIterator[T]) Err() error {
	return nil
}

// Range returns the sequence from (inclusive) to to (exclusive).
func Range[T constraints.Integer](from, to T) Seq[T] {
	return Func[T](func() Iterator[T] {
		return &rangeIterator[T]{next: from, to: to}
	})
}

type generateIterator[T any] struct {
	n    int
	f    func(i int) (T, error)
	pos  int
	item T
	err  error
}

func (it *generateIterator[T]) Next() bool {
	if it.err != nil || it.pos >= it.n {
		return false
	}

	item, err := it.f(it.pos)
	if err != nil {
		it.err = err
		return false
	}

	it.item = item
	it.pos++
	return true
}

func (it *generateIterator[T]) Item() T {
	return it.item
}

func (it *generateIterator[T]) Err() error {
	return it.err
}

// Generate returns a sequence of n elements produced by f. An error from
// f aborts the traversal that hit it and surfaces through Iterator.Err;
// the sequence itself stays reusable.
func Generate[T any](n int, f func(i int) (T, error)) Seq[T] {
	return Func[T](func() Iterator[T] {
		return &generateIterator[T]{n: n, f: f}
	})
}

// Empty returns a valid sequence with no elements.
func Empty[T any]() Seq[T] {
	return Func[T](func() Iterator[T] {
		return &sliceIterator[T]{}
	})
}
