/*
Package arraylist implements an index-based list on a dynamically resizing
backing array. Growth doubles the capacity so that appending is O(1)
amortized.

The list is not safe for concurrent use.
*/
package arraylist

// List is an array-backed list.
//
// The zero value is a ready to use empty list.
type List[E any] struct {
	// data's length is the current capacity; only the first size slots
	// hold elements.
	data []E
	size int
}

// New creates an empty list with initial capacity cap.
func New[E any](cap int) *List[E] {
	return &List[E]{data: make([]E, cap)}
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.size
}

// IsEmpty returns whether the list has no elements.
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Get returns the element at index i.
//
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (l *List[E]) Get(i int) E {
	l.checkIndex(i)
	return l.data[i]
}

// Set replaces the element at index i and returns the replaced element.
//
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (l *List[E]) Set(i int, e E) E {
	l.checkIndex(i)
	old := l.data[i]
	l.data[i] = e
	return old
}

// Add inserts an element at index i, shifting any elements at and after i
// one slot towards the back. Adding at Len() appends.
//
// It panics with ErrIndexOutOfRange unless 0 <= i <= Len().
func (l *List[E]) Add(i int, e E) {
	if i < 0 || i > l.size {
		panic(ErrIndexOutOfRange)
	}
	l.ensureCapacity(l.size + 1)
	copy(l.data[i+1:l.size+1], l.data[i:l.size])
	l.data[i] = e
	l.size++
}

// Append inserts an element at the back of the list.
func (l *List[E]) Append(e E) {
	l.Add(l.size, e)
}

// Remove removes and returns the element at index i, shifting any elements
// after i one slot towards the front.
//
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (l *List[E]) Remove(i int) E {
	l.checkIndex(i)
	e := l.data[i]
	copy(l.data[i:l.size-1], l.data[i+1:l.size])

	// Zero the vacated slot so the backing array does not retain the
	// shifted-out element.
	var zero E
	l.data[l.size-1] = zero
	l.size--

	return e
}

// ensureCapacity grows the backing array to hold at least minCapacity
// elements, copying the existing elements over. Capacity doubles on each
// growth, plus one to escape zero capacity.
func (l *List[E]) ensureCapacity(minCapacity int) {
	oldCapacity := len(l.data)
	if minCapacity > oldCapacity {
		newCapacity := oldCapacity*2 + 1
		if newCapacity < minCapacity {
			newCapacity = minCapacity
		}
		data := make([]E, newCapacity)
		copy(data, l.data[:l.size])
		l.data = data
	}
}

func (l *List[E]) checkIndex(i int) {
	if i < 0 || i >= l.size {
		panic(ErrIndexOutOfRange)
	}
}
