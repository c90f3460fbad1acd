package set

import (
	"github.com/denismitr/dll"
)

// Ordered is an insertion-ordered set over comparable elements. The first
// insertion of an element determines its position; re-adding an existing
// element is a no-op.
type Ordered[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*Ordered[int])(nil)

func NewOrdered[T comparable]() *Ordered[T] {
	return &Ordered[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

func (s *Ordered[T]) Add(item T) (modified bool) {
	if _, found := s.m[item]; found {
		return false
	}

	newEl := dll.NewElement(item)
	s.m[item] = newEl
	s.list.PushTail(newEl)
	return true
}

func (s *Ordered[T]) AddSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Add(item) {
			modified = true
		}
	}

	return modified
}

func (s *Ordered[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Ordered[T]) Delete(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, el.Value())
		s.list.Remove(el)
		return true
	}

	return false
}

// Items returns the elements in insertion order.
func (s *Ordered[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// Each walks the elements in insertion order.
func (s *Ordered[T]) Each(f func(item T, order int)) {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		f(curr.Value(), order)
		curr = curr.Next()
		order++
	}
}

func (s *Ordered[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *Ordered[T]) Len() int {
	return len(s.m)
}
