package poslist

// PositionIterator is a single-pass forward cursor over the positions of a
// list. Each call to List.Positions returns a fresh, independently
// positioned iterator.
//
// Removal through the iterator is single-shot: it targets the position most
// recently returned by Next and must be re-armed by another Next.
type PositionIterator[E any] struct {
	list     *List[E]
	cursor   *node[E]
	removeOK bool
}

// Positions returns a new iterator over the positions of the list, front to
// back.
func (l *List[E]) Positions() *PositionIterator[E] {
	l.lazyInit()
	return &PositionIterator[E]{
		list:   l,
		cursor: l.front.next,
	}
}

// HasNext returns whether the iterator has positions left.
func (it *PositionIterator[E]) HasNext() bool {
	return it.cursor != &it.list.tail
}

// Next returns the current position and advances the cursor.
//
// It panics with ErrIteratorExhausted if the iterator has no positions left.
func (it *PositionIterator[E]) Next() Position[E] {
	if !it.HasNext() {
		panic(ErrIteratorExhausted)
	}
	p := Position[E]{it.cursor}
	it.cursor = it.cursor.next
	it.removeOK = true
	return p
}

// Remove removes the position most recently returned by Next and returns
// its element. That position is the cursor's predecessor, since Next has
// already advanced past it. Removal delegates to List.Remove, the sole
// removal path.
//
// It panics with ErrIteratorState if called before the first Next or twice
// without an intervening Next.
func (it *PositionIterator[E]) Remove() E {
	if !it.removeOK {
		panic(ErrIteratorState)
	}
	it.removeOK = false
	return it.list.Remove(Position[E]{it.cursor.prev})
}

// ElementIterator is a single-pass forward cursor over the elements of a
// list. It wraps a PositionIterator and holds no state of its own.
type ElementIterator[E any] struct {
	it *PositionIterator[E]
}

// Elements returns a new iterator over the elements of the list, front to
// back.
func (l *List[E]) Elements() *ElementIterator[E] {
	return &ElementIterator[E]{it: l.Positions()}
}

// HasNext returns whether the iterator has elements left.
func (it *ElementIterator[E]) HasNext() bool {
	return it.it.HasNext()
}

// Next returns the current element and advances the cursor.
//
// It panics with ErrIteratorExhausted if the iterator has no elements left.
func (it *ElementIterator[E]) Next() E {
	return it.it.Next().Element()
}

// Remove removes the element most recently returned by Next and returns it.
//
// It panics with ErrIteratorState if called before the first Next or twice
// without an intervening Next.
func (it *ElementIterator[E]) Remove() E {
	return it.it.Remove()
}
