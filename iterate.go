package setops

import (
	"github.com/evanwon/setops/equality"
	"github.com/evanwon/setops/seq"
	"github.com/evanwon/setops/set"
)

type (
	// membership is the dedup state an operator traversal keeps: Add
	// reports whether the item was absent.
	membership[T any] interface {
		Add(item T) (modified bool)
		Has(item T) bool
	}

	// every traversal gets fresh membership state, so concurrent or
	// repeated traversals of one sequence never share anything.
	membershipFactory[T any] func() membership[T]
)

func hashedMembership[T comparable]() membershipFactory[T] {
	return func() membership[T] {
		return set.NewHashed[T]()
	}
}

func keyedMembership[T any](cmp equality.Comparer[T]) membershipFactory[T] {
	return func() membership[T] {
		return set.NewKeyed(cmp)
	}
}

type concatIterator[T any] struct {
	a, b  seq.Iterator[T]
	aDone bool
	err   error
}

func (it *concatIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if !it.aDone {
		if it.a.Next() {
			return true
		}
		if err := it.a.Err(); err != nil {
			it.err = err
			return false
		}
		it.aDone = true
	}

	if it.b.Next() {
		return true
	}
	it.err = it.b.Err()
	return false
}

func (it *concatIterator[T]) Item() T {
	if it.aDone {
		return it.b.Item()
	}
	return it.a.Item()
}

func (it *concatIterator[T]) Err() error {
	return it.err
}

func concatSeq[T any](a, b seq.Seq[T]) seq.Seq[T] {
	return seq.Func[T](func() seq.Iterator[T] {
		return &concatIterator[T]{a: a.Iterate(), b: b.Iterate()}
	})
}

type distinctIterator[T any] struct {
	src  seq.Iterator[T]
	seen membership[T]
	item T
	err  error
}

func (it *distinctIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	for it.src.Next() {
		item := it.src.Item()
		if it.seen.Add(item) {
			it.item = item
			return true
		}
	}

	it.err = it.src.Err()
	return false
}

func (it *distinctIterator[T]) Item() T {
	return it.item
}

func (it *distinctIterator[T]) Err() error {
	return it.err
}

func distinctSeq[T any](src seq.Seq[T], newSet membershipFactory[T]) seq.Seq[T] {
	return seq.Func[T](func() seq.Iterator[T] {
		return &distinctIterator[T]{src: src.Iterate(), seen: newSet()}
	})
}

// semiJoinIterator filters a by membership in b: a semijoin when keep is
// true (intersect), an antijoin when keep is false (except). The index
// over b is built on the first pull, deferring all work past
// construction, and rebuilt per traversal so re-runs observe b's current
// contents.
type semiJoinIterator[T any] struct {
	a      seq.Iterator[T]
	b      seq.Seq[T]
	keep   bool
	newSet membershipFactory[T]
	seen   membership[T]
	index  membership[T]
	item   T
	err    error
}

func (it *semiJoinIterator[T]) prime() bool {
	it.index = it.newSet()
	bIt := it.b.Iterate()
	for bIt.Next() {
		it.index.Add(bIt.Item())
	}

	if err := bIt.Err(); err != nil {
		it.err = err
		return false
	}
	return true
}

func (it *semiJoinIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}

	if it.index == nil && !it.prime() {
		return false
	}

	for it.a.Next() {
		item := it.a.Item()
		if it.index.Has(item) != it.keep {
			continue
		}
		if !it.seen.Add(item) {
			continue
		}
		it.item = item
		return true
	}

	it.err = it.a.Err()
	return false
}

func (it *semiJoinIterator[T]) Item() T {
	return it.item
}

func (it *semiJoinIterator[T]) Err() error {
	return it.err
}

func semiJoinSeq[T any](a, b seq.Seq[T], keep bool, newSet membershipFactory[T]) seq.Seq[T] {
	return seq.Func[T](func() seq.Iterator[T] {
		return &semiJoinIterator[T]{
			a:      a.Iterate(),
			b:      b,
			keep:   keep,
			newSet: newSet,
			seen:   newSet(),
		}
	})
}
