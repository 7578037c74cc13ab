package datastructures

import (
	"fmt"
	"strings"
)

// String renders the values head first as "[ v0, v1, v2 ]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.value)
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteString(" ]")
	return b.String()
}

// DetailedString renders every element together with its neighbours, e.g.
// "[ null<-*a*->[ b ], [ a ]<-*b*->null ]".
func (l *List[T]) DetailedString() string {
	var b strings.Builder
	b.WriteString("[ ")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%s<-*%v*->%s", renderNeighbour(n.prev), n.value, renderNeighbour(n.next))
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteString(" ]")
	return b.String()
}

func renderNeighbour[T comparable](n *Node[T]) string {
	if n == nil {
		return "null"
	}
	return n.String()
}
