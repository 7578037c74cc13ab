package datastructures

import (
	"fmt"
	"iter"
)

// List is a doubly linked list of comparable values. It is not safe for
// concurrent use; callers sharing a List must serialise every call.
//
// head and tail are either both nil or both set, and size always equals the
// number of nodes reachable from head.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// NewList creates an empty list.
func NewList[T comparable]() *List[T] {
	return &List[T]{}
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) error {
	if isInvalid(v) {
		return fmt.Errorf("append: %w", ErrInvalidValue)
	}
	l.checkEnds()

	n := &Node[T]{value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return nil
}

// InsertBefore inserts v in front of the element currently at index, so that
// Get(index) returns v afterwards. index must address an existing element:
// InsertBefore cannot append, use Append for that.
func (l *List[T]) InsertBefore(index int, v T) error {
	if isInvalid(v) {
		return fmt.Errorf("insert: %w", ErrInvalidValue)
	}
	if index < 0 || index >= l.size {
		return outOfBounds(index)
	}
	l.checkEnds()

	next := l.elementAt(index)
	prev := next.prev
	n := &Node[T]{value: v, prev: prev, next: next}
	next.prev = n
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	l.size++
	return nil
}

// Get returns the value at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, outOfBounds(index)
	}
	return l.elementAt(index).value, nil
}

// Head returns the first value, or false if the list is empty.
func (l *List[T]) Head() (T, bool) {
	l.checkEnds()
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Tail returns the last value, or false if the list is empty.
func (l *List[T]) Tail() (T, bool) {
	l.checkEnds()
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Size returns the number of values in the list.
func (l *List[T]) Size() int {
	return l.size
}

// Contains returns the first stored value equal to v. The boolean is false
// when no such value exists.
func (l *List[T]) Contains(v T) (T, bool, error) {
	if isInvalid(v) {
		var zero T
		return zero, false, fmt.Errorf("contains: %w", ErrInvalidArgument)
	}
	n, _ := l.firstElement(v)
	if n == nil {
		var zero T
		return zero, false, nil
	}
	return n.value, true, nil
}

// IndexOf returns the position of the first value equal to v, or -1.
func (l *List[T]) IndexOf(v T) (int, error) {
	if isInvalid(v) {
		return -1, fmt.Errorf("index of: %w", ErrInvalidArgument)
	}
	_, i := l.firstElement(v)
	return i, nil
}

// RemoveAt unlinks the element at index and returns its value.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, outOfBounds(index)
	}
	n := l.elementAt(index)
	l.removeElement(n)
	return n.value, nil
}

// Remove unlinks the first element equal to v and returns its value. The
// boolean is false, and the list untouched, when v is not present.
func (l *List[T]) Remove(v T) (T, bool, error) {
	if isInvalid(v) {
		var zero T
		return zero, false, fmt.Errorf("remove: %w", ErrInvalidArgument)
	}
	n, _ := l.firstElement(v)
	if n == nil {
		var zero T
		return zero, false, nil
	}
	l.removeElement(n)
	return n.value, true, nil
}

// Iterator returns a forward cursor over the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// All returns the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns the values from tail to head, following prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values copies the list into a slice, head first.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// elementAt returns the node at a valid index, walking from the closer end.
func (l *List[T]) elementAt(index int) *Node[T] {
	if index < l.size/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// firstElement returns the first node holding v and its position, or nil and -1.
func (l *List[T]) firstElement(v T) (*Node[T], int) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return n, i
		}
		i++
	}
	return nil, -1
}

// removeElement joins the neighbours of n. A missing predecessor makes the
// successor the new head, a missing successor makes the predecessor the new
// tail.
func (l *List[T]) removeElement(n *Node[T]) {
	l.checkEnds()

	prev, next := n.prev, n.next
	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}
	n.unlink()
	l.size--
}

// checkEnds panics when head, tail and size disagree about emptiness.
func (l *List[T]) checkEnds() {
	if (l.head == nil) == (l.tail == nil) && (l.head == nil) == (l.size == 0) {
		return
	}
	panic(fmt.Errorf("%w: head %s, tail %s, size %d",
		ErrInternalConsistency, renderNeighbour(l.head), renderNeighbour(l.tail), l.size))
}
