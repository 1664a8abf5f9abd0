package solver

// frontier is the ordered collection of pending cell indices.
type frontier interface {
	push(idx int)
	pop() (int, error)
	len() int
}

// newFrontier returns a LIFO frontier for DepthFirst and a FIFO one for
// BreadthFirst, with capacity hint n.
func newFrontier(s Strategy, n int) frontier {
	if s == BreadthFirst {
		return &queue{items: make([]int, 0, n)}
	}
	return &stack{items: make([]int, 0, n)}
}

// stack is a LIFO frontier.
type stack struct {
	items []int
}

func (s *stack) push(idx int) { s.items = append(s.items, idx) }

func (s *stack) pop() (int, error) {
	n := len(s.items)
	if n == 0 {
		return 0, ErrFrontierEmpty
	}
	idx := s.items[n-1]
	s.items = s.items[:n-1]
	return idx, nil
}

func (s *stack) len() int { return len(s.items) }

// queue is a FIFO frontier. Dequeued slots before head are dropped
// lazily once they make up half of the backing slice.
type queue struct {
	items []int
	head  int
}

func (q *queue) push(idx int) { q.items = append(q.items, idx) }

func (q *queue) pop() (int, error) {
	if q.head == len(q.items) {
		return 0, ErrFrontierEmpty
	}
	idx := q.items[q.head]
	q.head++
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return idx, nil
}

func (q *queue) len() int { return len(q.items) - q.head }
