// Package seq implements deferred, re-traversable sequences: a Seq
// performs no work when built, only when pulled from, and every call to
// Iterate starts an independent traversal against the then-current
// contents of the backing data.
package seq

type (
	// Iterator is a single traversal. Next advances and reports whether an
	// element is available; after it returns false, Err distinguishes
	// normal exhaustion (nil) from a source failure. Abandoning an
	// iterator at any point is valid and requires no cleanup.
	Iterator[T any] interface {
		Next() bool
		Item() T
		Err() error
	}

	// Seq is a deferred sequence handle.
	Seq[T any] interface {
		Iterate() Iterator[T]
	}

	// Func adapts a traversal factory into a Seq.
	Func[T any] func() Iterator[T]
)

func (f Func[T]) Iterate() Iterator[T] {
	return f()
}
