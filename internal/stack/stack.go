// Package stack provides a slice backed LIFO stack.
package stack

// Stack is a LIFO stack. The zero value is an empty stack.
type Stack[T any] []T

func (s *Stack[T]) Push(items ...T) {
	*s = append(*s, items...)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := s.Len()
	if l == 0 {
		return zero, false
	}

	item := (*s)[l-1]
	(*s)[l-1] = zero
	*s = (*s)[:l-1]

	if c := s.Cap(); c > 20 && c > s.Len()*2 {
		s.realloc()
	}
	return item, true
}

// Peek returns the top item without removing it.
func (s Stack[T]) Peek() (T, bool) {
	if l := s.Len(); l > 0 {
		return s[l-1], true
	}
	var zero T
	return zero, false
}

func (s *Stack[T]) realloc() {
	*s = append(Stack[T](nil), *s...)
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s Stack[T]) Cap() int {
	return cap(s)
}
