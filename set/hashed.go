package set

// Hashed - is an unordered set over comparable elements backed by the
// built-in map, i.e. the element type's intrinsic equality and hash.
type Hashed[T comparable] struct {
	m map[T]struct{}
}

var _ Set[int] = (*Hashed[int])(nil)

func NewHashed[T comparable]() *Hashed[T] {
	return &Hashed[T]{
		m: make(map[T]struct{}),
	}
}

func (s *Hashed[T]) Add(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *Hashed[T]) AddSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Add(item) {
			modified = true
		}
	}

	return modified
}

func (s *Hashed[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Hashed[T]) Delete(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *Hashed[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *Hashed[T]) Clear() {
	s.m = make(map[T]struct{})
}

func (s *Hashed[T]) Len() int {
	return len(s.m)
}
