package set

// Set is the membership surface shared by all implementations in this
// package.
type Set[T any] interface {
	Add(item T) (modified bool)
	Has(item T) bool
	Len() int
}
