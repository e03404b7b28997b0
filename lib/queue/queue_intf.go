package queue

// Queue is a FIFO queue. It is not thread safe.
type Queue[E comparable] interface {
	Len() int64
	IsEmpty() bool
	// Enqueue appends e at the tail.
	Enqueue(e E)
	// Dequeue removes and returns the head, false if the queue is empty.
	Dequeue() (E, bool)
	// Peek returns the head without removing it, false if the queue is empty.
	Peek() (E, bool)
}
