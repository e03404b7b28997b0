package list

type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T] // nil once removed
	Value      T
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.next != nil && e.next != e.listRef.root
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.prev != nil && e.prev != e.listRef.root
}

// Next returns the next element or nil at the back of the list.
func (e *NodeElement[T]) Next() *NodeElement[T] {
	if !e.HasNext() {
		return nil
	}
	return e.next
}

// Prev returns the previous element or nil at the front of the list.
func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if !e.HasPrev() {
		return nil
	}
	return e.prev
}
