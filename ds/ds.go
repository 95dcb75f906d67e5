// Package ds holds the small generic containers the registry is built on.
package ds

type Set[T comparable] map[T]struct{}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Remove(item T) {
	delete(s, item)
}

func (s Set[T]) Has(item T) bool {
	_, exists := s[item]
	return exists
}

func (s Set[T]) Len() int {
	return len(s)
}

// use make(Slice[T], len, cap) or Slice[T]{} to make instances of this
type Slice[T any] []T

func (s *Slice[T]) Push(item T) {
	(*s) = append((*s), item)
}

func (s *Slice[T]) Pop() T {
	item := (*s)[len((*s))-1]
	(*s) = (*s)[:len((*s))-1]
	return item
}

func (s *Slice[T]) Last() T {
	return (*s)[len((*s))-1]
}

func (s *Slice[T]) Reset() {
	(*s) = (*s)[:0]
}

func (s *Slice[T]) IsEmpty() bool {
	return len((*s)) == 0
}

func (s *Slice[T]) Len() int {
	return len((*s))
}
