package queue

import "github.com/benz9527/xalgo/lib/list"

var _ Queue[struct{}] = (*linkedQueue[struct{}])(nil) // Type check assertion

type linkedQueue[E comparable] struct {
	elements list.LinkedList[E]
}

func NewLinkedQueue[E comparable]() Queue[E] {
	return &linkedQueue[E]{
		elements: list.NewLinkedList[E](),
	}
}

func (q *linkedQueue[E]) Len() int64 {
	return q.elements.Len()
}

func (q *linkedQueue[E]) IsEmpty() bool {
	return q.elements.Len() == 0
}

func (q *linkedQueue[E]) Enqueue(e E) {
	q.elements.PushBack(e)
}

func (q *linkedQueue[E]) Dequeue() (E, bool) {
	head := q.elements.Front()
	if head == nil {
		var zero E
		return zero, false
	}
	q.elements.Remove(head)
	return head.Value, true
}

func (q *linkedQueue[E]) Peek() (E, bool) {
	head := q.elements.Front()
	if head == nil {
		var zero E
		return zero, false
	}
	return head.Value, true
}
