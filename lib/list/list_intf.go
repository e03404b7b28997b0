package list

// LinkedList is the doubly linked list interface.
// It is not thread safe.
type LinkedList[T comparable] interface {
	Len() int64
	// Front returns the first element of list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of list l or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element with value v at the front of list l and returns it.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element with value v at the back of list l and returns it.
	PushBack(v T) *NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and returns targetE.
	// It returns nil if the list is empty or targetE belongs to another list.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// FindFirst finds the first element that satisfies the compareFn.
	// Without compareFn, the values are compared by ==.
	FindFirst(v T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool)
}
