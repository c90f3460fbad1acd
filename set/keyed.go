package set

import (
	"github.com/evanwon/setops/equality"
)

// Keyed is a set whose membership notion comes from a caller-supplied
// Comparer. Elements hash into buckets; within a bucket membership is
// decided by full equality, so a Comparer with poor hash distribution
// degrades lookups without ever producing wrong answers.
type Keyed[T any] struct {
	cmp     equality.Comparer[T]
	buckets map[uint64][]T
	size    int
}

var _ Set[string] = (*Keyed[string])(nil)

func NewKeyed[T any](cmp equality.Comparer[T]) *Keyed[T] {
	return &Keyed[T]{
		cmp:     cmp,
		buckets: make(map[uint64][]T),
	}
}

func (s *Keyed[T]) Add(item T) (modified bool) {
	h := s.cmp.Hash(item)
	for _, existing := range s.buckets[h] {
		if s.cmp.Equals(existing, item) {
			return false
		}
	}

	s.buckets[h] = append(s.buckets[h], item)
	s.size++
	return true
}

func (s *Keyed[T]) AddSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Add(item) {
			modified = true
		}
	}

	return modified
}

func (s *Keyed[T]) Has(item T) bool {
	for _, existing := range s.buckets[s.cmp.Hash(item)] {
		if s.cmp.Equals(existing, item) {
			return true
		}
	}

	return false
}

func (s *Keyed[T]) Len() int {
	return s.size
}
