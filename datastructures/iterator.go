package datastructures

// Iterator is a forward-only cursor over a List. It attaches to the head of
// the list on the first call to Next, not when it is created, so values
// appended between Iterator and the first Next are yielded too.
type Iterator[T comparable] struct {
	list    *List[T]
	next    *Node[T]
	started bool
	done    bool
}

// Next returns the next value. Once it reports false it keeps doing so.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if !it.started {
		it.started = true
		it.next = it.list.head
	}
	if it.next == nil {
		it.done = true
		it.list = nil
		return zero, false
	}
	n := it.next
	it.next = n.next
	return n.value, true
}
