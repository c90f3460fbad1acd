// Package setops provides set-theoretic operators over deferred
// sequences: Union, Intersect, Except, Concat and Distinct, each with a
// *By variant taking a custom equality notion. Operators validate their
// arguments and return immediately; elements are produced only when the
// resulting sequence is traversed, and every traversal re-runs the
// operator against the sources' current contents.
package setops

import (
	"github.com/pkg/errors"

	"github.com/evanwon/setops/equality"
	"github.com/evanwon/setops/seq"
	"github.com/evanwon/setops/set"
)

var (
	ErrNilSource   = errors.New("source sequence is nil")
	ErrNilComparer = errors.New("comparer is nil")
)

func requireSources[T any](op string, sources ...seq.Seq[T]) error {
	for i, s := range sources {
		if s == nil {
			return errors.Wrapf(ErrNilSource, "%s: source %d", op, i+1)
		}
	}
	return nil
}

func requireComparer[T any](op string, cmp equality.Comparer[T]) error {
	if cmp == nil {
		return errors.Wrap(ErrNilComparer, op)
	}
	return nil
}

// Union yields every element of a in order, then the elements of b not
// equivalent to anything already yielded, in b's order. Each equivalence
// class appears exactly once, at its first occurrence.
func Union[T comparable](a, b seq.Seq[T]) (seq.Seq[T], error) {
	if err := requireSources("union", a, b); err != nil {
		return nil, err
	}
	return distinctSeq(concatSeq(a, b), hashedMembership[T]()), nil
}

// UnionBy is Union under a custom equality notion.
func UnionBy[T any](a, b seq.Seq[T], cmp equality.Comparer[T]) (seq.Seq[T], error) {
	if err := requireSources("union", a, b); err != nil {
		return nil, err
	}
	if err := requireComparer("union", cmp); err != nil {
		return nil, err
	}
	return distinctSeq(concatSeq(a, b), keyedMembership(cmp)), nil
}

// Intersect yields the elements of a, in a's order, that have an
// equivalent in b. Each equivalence class of a appears at most once.
// b is consumed into a membership index on the first pull of each
// traversal, never at construction time.
func Intersect[T comparable](a, b seq.Seq[T]) (seq.Seq[T], error) {
	if err := requireSources("intersect", a, b); err != nil {
		return nil, err
	}
	return semiJoinSeq(a, b, true, hashedMembership[T]()), nil
}

// IntersectBy is Intersect under a custom equality notion.
func IntersectBy[T any](a, b seq.Seq[T], cmp equality.Comparer[T]) (seq.Seq[T], error) {
	if err := requireSources("intersect", a, b); err != nil {
		return nil, err
	}
	if err := requireComparer("intersect", cmp); err != nil {
		return nil, err
	}
	return semiJoinSeq(a, b, true, keyedMembership(cmp)), nil
}

// Except yields the elements of a, in a's order, that have no equivalent
// in b. Each equivalence class of a appears at most once. Same index
// timing as Intersect.
func Except[T comparable](a, b seq.Seq[T]) (seq.Seq[T], error) {
	if err := requireSources("except", a, b); err != nil {
		return nil, err
	}
	return semiJoinSeq(a, b, false, hashedMembership[T]()), nil
}

// ExceptBy is Except under a custom equality notion.
func ExceptBy[T any](a, b seq.Seq[T], cmp equality.Comparer[T]) (seq.Seq[T], error) {
	if err := requireSources("except", a, b); err != nil {
		return nil, err
	}
	if err := requireComparer("except", cmp); err != nil {
		return nil, err
	}
	return semiJoinSeq(a, b, false, keyedMembership(cmp)), nil
}

// Concat yields all of a, then all of b. Duplicates are preserved; no
// equality notion is involved.
func Concat[T any](a, b seq.Seq[T]) (seq.Seq[T], error) {
	if err := requireSources("concat", a, b); err != nil {
		return nil, err
	}
	return concatSeq(a, b), nil
}

// Distinct yields the first occurrence of each equivalence class of a,
// in a's order.
func Distinct[T comparable](a seq.Seq[T]) (seq.Seq[T], error) {
	if err := requireSources("distinct", a); err != nil {
		return nil, err
	}
	return distinctSeq(a, hashedMembership[T]()), nil
}

// DistinctBy is Distinct under a custom equality notion.
func DistinctBy[T any](a seq.Seq[T], cmp equality.Comparer[T]) (seq.Seq[T], error) {
	if err := requireSources("distinct", a); err != nil {
		return nil, err
	}
	if err := requireComparer("distinct", cmp); err != nil {
		return nil, err
	}
	return distinctSeq(a, keyedMembership(cmp)), nil
}

// CollectOrdered traverses s into an insertion-ordered set, so callers
// that want a materialized deduplicated collection get one in
// first-occurrence order.
func CollectOrdered[T comparable](s seq.Seq[T]) (*set.Ordered[T], error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilSource, "collect ordered")
	}

	result := set.NewOrdered[T]()
	if err := seq.ForEach(s, func(item T) error {
		result.Add(item)
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}
