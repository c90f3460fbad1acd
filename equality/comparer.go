package equality

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

type (
	// Comparer defines an equivalence notion over T together with a hash
	// consistent with it: Equals(a, b) implies Hash(a) == Hash(b).
	// Supplying an inconsistent pair is a caller contract violation and
	// leads to undefined membership results.
	Comparer[T any] interface {
		Equals(a, b T) bool
		Hash(v T) uint64
	}

	EqualsFn[T any] func(a, b T) bool
	HashFn[T any]   func(v T) uint64
	KeyFn[T any]    func(v T) string
)

type funcComparer[T any] struct {
	equals EqualsFn[T]
	hash   HashFn[T]
}

func (c *funcComparer[T]) Equals(a, b T) bool { return c.equals(a, b) }
func (c *funcComparer[T]) Hash(v T) uint64    { return c.hash(v) }

// Func builds a Comparer from an equality predicate and a hash function.
// The two are always supplied together, never independently.
func Func[T any](equals EqualsFn[T], hash HashFn[T]) Comparer[T] {
	return &funcComparer[T]{equals: equals, hash: hash}
}

// Key derives both equality and hash from a string projection of T,
// e.g. comparing records by a name field.
func Key[T any](key KeyFn[T]) Comparer[T] {
	return &funcComparer[T]{
		equals: func(a, b T) bool {
			return key(a) == key(b)
		},
		hash: func(v T) uint64 {
			return xxhash.Sum64String(key(v))
		},
	}
}

// Fold is like Key but case-insensitive: projections that differ only in
// letter case belong to the same equivalence class. Both equality and
// hash go through the same lowercasing, keeping the pair consistent.
func Fold[T any](key KeyFn[T]) Comparer[T] {
	return Key(func(v T) string {
		return strings.ToLower(key(v))
	})
}
