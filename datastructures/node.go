package datastructures

import (
	"fmt"
	"reflect"
)

// Node is a single element of a List. It owns a value and links to its
// neighbours.
type Node[T comparable] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
}

// NewNode creates an unlinked node holding v.
func NewNode[T comparable](v T) (*Node[T], error) {
	if isInvalid(v) {
		return nil, fmt.Errorf("node: %w", ErrInvalidValue)
	}
	return &Node[T]{value: v}, nil
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the value held by the node.
func (n *Node[T]) SetValue(v T) error {
	if isInvalid(v) {
		return fmt.Errorf("node: %w", ErrInvalidValue)
	}
	n.value = v
	return nil
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// SetNext links next after n. It does not update next.prev.
func (n *Node[T]) SetNext(next *Node[T]) error {
	if next == nil {
		return fmt.Errorf("next node: %w", ErrInvalidLink)
	}
	n.next = next
	return nil
}

// SetPrev links prev before n. It does not update prev.next.
func (n *Node[T]) SetPrev(prev *Node[T]) error {
	if prev == nil {
		return fmt.Errorf("previous node: %w", ErrInvalidLink)
	}
	n.prev = prev
	return nil
}

// String renders the node as "[ value ]".
func (n *Node[T]) String() string {
	return fmt.Sprintf("[ %v ]", n.value)
}

// unlink clears both links. Only the list calls this, the public setters
// refuse nil.
func (n *Node[T]) unlink() {
	n.prev = nil
	n.next = nil
}

// isInvalid reports whether v cannot be stored or searched for: it is absent,
// or its dynamic type does not support ==.
func isInvalid(v any) bool {
	return isAbsent(v) || !reflect.ValueOf(v).Comparable()
}

// isAbsent reports whether v is nil, either as a nil interface or as a nil
// pointer, map, slice, channel or func.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
