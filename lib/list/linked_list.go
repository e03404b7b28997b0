package list

import "errors"

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

var ErrEmptyLinkedList = errors.New("[doubly-linked-list] empty")

// The root is a sentinel element closing the ring.
//
//	root.next => head, root.prev => tail
//	empty: root.next == root.prev == root
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{listRef: l}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

// owns reports whether targetE is linked into l.
func (l *doublyLinkedList[T]) owns(targetE *NodeElement[T]) bool {
	if targetE == nil || targetE == l.root || targetE.listRef != l ||
		targetE.prev == nil || targetE.next == nil {
		return false
	}
	return targetE.prev.next == targetE && targetE.next.prev == targetE
}

// insertAfter links newE right after at, at may be the root.
func (l *doublyLinkedList[T]) insertAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev, newE.next = at, at.next
	at.next.prev = newE
	at.next = newE
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(&NodeElement[T]{Value: v}, l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(&NodeElement[T]{Value: v}, l.root.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 || !l.owns(targetE) {
		return nil
	}

	targetE.prev.next = targetE.next
	targetE.next.prev = targetE.prev
	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil

	l.len--
	return targetE
}

// Foreach allows removing the current element while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return ErrEmptyLinkedList
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len == 0 {
		return nil, false
	}

	match := func(e *NodeElement[T]) bool {
		return e.Value == targetV
	}
	if len(compareFn) > 0 && compareFn[0] != nil {
		match = compareFn[0]
	}

	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if match(iterator) {
			return iterator, true
		}
	}
	return nil, false
}
