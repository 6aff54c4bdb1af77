/*
Package poslist implements a positional doubly linked list with stable,
opaque position handles supporting O(1) insertion and removal at arbitrary
points.

Size is maintained as a field so that Len and IsEmpty are O(1).

The list is not safe for concurrent use. Structurally mutating the list
while an iterator over the same list is mid-traversal leaves that
iterator's future behavior undefined.
*/
package poslist

// List is a positional doubly linked list.
//
// The zero value is a ready to use empty list.
type List[E any] struct {
	// front and tail are permanent sentinel nodes anchoring the chain.
	// They never hold elements and are never exposed as positions.
	front, tail node[E]
	size        int
}

// New creates an empty list.
func New[E any]() *List[E] {
	l := &List[E]{}
	l.lazyInit()
	return l
}

func (l *List[E]) lazyInit() {
	if l.front.next == nil {
		l.front.next = &l.tail
		l.tail.prev = &l.front
	}
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.size
}

// IsEmpty returns whether the list has no elements.
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// First returns the first position of the list, or false if the list is empty.
func (l *List[E]) First() (Position[E], bool) {
	if l.size == 0 {
		return Position[E]{}, false
	}
	return Position[E]{l.front.next}, true
}

// Last returns the last position of the list, or false if the list is empty.
func (l *List[E]) Last() (Position[E], bool) {
	if l.size == 0 {
		return Position[E]{}, false
	}
	return Position[E]{l.tail.prev}, true
}

// Before returns the position immediately before p, or false if p is first.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) Before(p Position[E]) (Position[E], bool) {
	n := l.validate(p)
	return l.position(n.prev)
}

// After returns the position immediately after p, or false if p is last.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) After(p Position[E]) (Position[E], bool) {
	n := l.validate(p)
	return l.position(n.next)
}

// AddFirst inserts an element at the front of the list and returns its position.
func (l *List[E]) AddFirst(e E) Position[E] {
	l.lazyInit()
	return l.splice(e, &l.front, l.front.next)
}

// AddLast inserts an element at the back of the list and returns its position.
func (l *List[E]) AddLast(e E) Position[E] {
	l.lazyInit()
	return l.splice(e, l.tail.prev, &l.tail)
}

// AddBefore inserts an element immediately before p and returns its position.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) AddBefore(p Position[E], e E) Position[E] {
	n := l.validate(p)
	return l.splice(e, n.prev, n)
}

// AddAfter inserts an element immediately after p and returns its position.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) AddAfter(p Position[E], e E) Position[E] {
	n := l.validate(p)
	return l.splice(e, n, n.next)
}

// Set replaces the element at p and returns the replaced element.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) Set(p Position[E], e E) E {
	n := l.validate(p)
	old := n.element
	n.element = e
	return old
}

// Remove unlinks the node at p and returns its element. The handle p is
// permanently invalidated: any later use of it fails with ErrInvalidPosition.
//
// It panics with ErrInvalidPosition if p does not belong to this list.
func (l *List[E]) Remove(p Position[E]) E {
	n := l.validate(p)
	n.prev.next = n.next
	n.next.prev = n.prev
	l.size--

	e := n.element

	// Clear the unlinked node so a retained handle cannot pass
	// validation or leak the element.
	var zero E
	n.element = zero
	n.next = nil
	n.prev = nil
	n.list = nil

	return e
}

// Do calls function f on each position of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[E]) Do(f func(p Position[E]) bool) {
	l.lazyInit()
	for n := l.front.next; n != &l.tail; n = n.next {
		if !f(Position[E]{n}) {
			return
		}
	}
}

// splice links a new node holding e between prev and next. All four Add
// variants funnel here.
func (l *List[E]) splice(e E, prev, next *node[E]) Position[E] {
	n := &node[E]{
		list:    l,
		element: e,
		prev:    prev,
		next:    next,
	}
	prev.next = n
	next.prev = n
	l.size++
	return Position[E]{n}
}

// validate is the single gate protecting all invariants: it accepts a
// position iff it wraps a node currently linked into this list. Zero
// handles, handles from other lists and handles whose node has been
// removed all fail here, before any mutation.
func (l *List[E]) validate(p Position[E]) *node[E] {
	if p.node == nil || p.node.list != l {
		panic(ErrInvalidPosition)
	}
	return p.node
}

// position wraps a node as a position, or returns false for a sentinel.
func (l *List[E]) position(n *node[E]) (Position[E], bool) {
	if n == &l.front || n == &l.tail {
		return Position[E]{}, false
	}
	return Position[E]{n}, true
}
