package solve

// Stack is a LIFO container.
type Stack[T any] struct {
	s []T
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.s)
}

// NewQueue creates a FIFO queue seeded with in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

// Queue is a FIFO container.
type Queue[T any] struct {
	q []T
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.q)
}

// Push adds v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops elements and calls f until the queue drains or f
// returns false.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
