// Package list implements a doubly linked list with O(1) reversal.
//
// Nodes are kept in a slice and link to each other by index, so the list owns
// all of its nodes and removed slots are reused by later inserts.
package list

import "github.com/RichieSams/containers/util"

// none marks a missing link
const none = -1

type node[T comparable] struct {
	value      T
	prev, next int
}

// List is a doubly linked list. The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use.
type List[T comparable] struct {
	nodes    []node[T]
	free     []int
	head     int
	tail     int
	size     int
	reversed bool
}

// New creates an empty List.
func New[T comparable]() *List[T] {
	return &List[T]{head: none, tail: none}
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Reverse reverses the order of the elements in O(1).
func (l *List[T]) Reverse() {
	l.reversed = !l.reversed
}

func (l *List[T]) alloc(t T) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node[T]{value: t, prev: none, next: none}
		return i
	}
	l.nodes = append(l.nodes, node[T]{value: t, prev: none, next: none})
	return len(l.nodes) - 1
}

func (l *List[T]) release(i int) {
	l.nodes[i] = node[T]{prev: none, next: none}
	l.free = append(l.free, i)
}

// frontNode and backNode return the node at the logical front and back. The
// list must not be empty.
func (l *List[T]) frontNode() int {
	if l.reversed {
		return l.tail
	}
	return l.head
}

func (l *List[T]) backNode() int {
	if l.reversed {
		return l.head
	}
	return l.tail
}

// following returns the node after i in logical order.
func (l *List[T]) following(i int) int {
	if l.reversed {
		return l.nodes[i].prev
	}
	return l.nodes[i].next
}

// PushFront inserts t before the first element.
func (l *List[T]) PushFront(t T) {
	l.insert(!l.reversed, t)
}

// PushBack inserts t after the last element.
func (l *List[T]) PushBack(t T) {
	l.insert(l.reversed, t)
}

// insert links a new node at the head (atHead) or tail of the chain.
func (l *List[T]) insert(atHead bool, t T) {
	i := l.alloc(t)

	switch {
	case l.size == 0:
		l.head, l.tail = i, i
	case atHead:
		l.nodes[i].next = l.head
		l.nodes[l.head].prev = i
		l.head = i
	default:
		l.nodes[i].prev = l.tail
		l.nodes[l.tail].next = i
		l.tail = i
	}
	l.size++
}

// unlink removes node i from the chain and returns its value.
func (l *List[T]) unlink(i int) T {
	n := l.nodes[i]

	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}

	l.release(i)
	l.size--
	return n.value
}

// PopFront removes and returns the first element. ok is false if the list is empty.
func (l *List[T]) PopFront() (t T, ok bool) {
	if l.size == 0 {
		return
	}
	return l.unlink(l.frontNode()), true
}

// PopBack removes and returns the last element. ok is false if the list is empty.
func (l *List[T]) PopBack() (t T, ok bool) {
	if l.size == 0 {
		return
	}
	return l.unlink(l.backNode()), true
}

// Front returns the first element. ok is false if the list is empty.
func (l *List[T]) Front() (t T, ok bool) {
	if l.size == 0 {
		return
	}
	return l.nodes[l.frontNode()].value, true
}

// Back returns the last element. ok is false if the list is empty.
func (l *List[T]) Back() (t T, ok bool) {
	if l.size == 0 {
		return
	}
	return l.nodes[l.backNode()].value, true
}

// SetFront replaces the first element. It returns false if the list is empty.
func (l *List[T]) SetFront(t T) bool {
	if l.size == 0 {
		return false
	}
	l.nodes[l.frontNode()].value = t
	return true
}

// SetBack replaces the last element. It returns false if the list is empty.
func (l *List[T]) SetBack(t T) bool {
	if l.size == 0 {
		return false
	}
	l.nodes[l.backNode()].value = t
	return true
}

func (l *List[T]) find(t T) int {
	if l.size == 0 {
		return none
	}
	for i, n := l.frontNode(), 0; n < l.size; i, n = l.following(i), n+1 {
		if l.nodes[i].value == t {
			return i
		}
	}
	return none
}

// Contains reports whether any element equals t.
func (l *List[T]) Contains(t T) bool {
	return l.find(t) != none
}

// RemoveValue removes the first element equal to t and reports whether one was found.
func (l *List[T]) RemoveValue(t T) bool {
	i := l.find(t)
	if i == none {
		return false
	}
	l.unlink(i)
	return true
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	if l.size == 0 {
		return values
	}
	for i, n := l.frontNode(), 0; n < l.size; i, n = l.following(i), n+1 {
		values = append(values, l.nodes[i].value)
	}
	return values
}

func (l *List[T]) String() string {
	values := l.Values()
	return util.Format(len(values), func(i int) T { return values[i] })
}
