package seq

import (
	"github.com/pkg/errors"
)

var ErrNilSeq = errors.New("sequence is nil")

// Collect traverses s to completion. A source error aborts the traversal
// and is returned verbatim.
func Collect[T any](s Seq[T]) ([]T, error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilSeq, "collect")
	}

	var items []T
	it := s.Iterate()
	for it.Next() {
		items = append(items, it.Item())
	}

	if err := it.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Take pulls at most n elements from s and stops. Stopping early is a
// valid partial traversal; the rest of the sequence is never computed.
func Take[T any](s Seq[T], n int) ([]T, error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilSeq, "take")
	}

	var items []T
	it := s.Iterate()
	for len(items) < n && it.Next() {
		items = append(items, it.Item())
	}

	if err := it.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func Count[T any](s Seq[T]) (int, error) {
	if s == nil {
		return 0, errors.Wrap(ErrNilSeq, "count")
	}

	n := 0
	it := s.Iterate()
	for it.Next() {
		n++
	}

	if err := it.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// First returns the first element of s, and false when s is empty.
func First[T any](s Seq[T]) (T, bool, error) {
	var zero T
	if s == nil {
		return zero, false, errors.Wrap(ErrNilSeq, "first")
	}

	it := s.Iterate()
	if it.Next() {
		return it.Item(), true, nil
	}

	if err := it.Err(); err != nil {
		return zero, false, err
	}
	return zero, false, nil
}

// ForEach calls f for every element of s. An error from f aborts the
// traversal and is returned; a source error is returned verbatim.
func ForEach[T any](s Seq[T], f func(item T) error) error {
	if s == nil {
		return errors.Wrap(ErrNilSeq, "for each")
	}

	it := s.Iterate()
	for it.Next() {
		if err := f(it.Item()); err != nil {
			return err
		}
	}

	return it.Err()
}
