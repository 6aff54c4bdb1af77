package arraylist

// Iterator is a single-pass forward cursor over the elements of a list.
// Each call to List.Iterator returns a fresh, independently positioned
// iterator.
//
// Removal through the iterator is single-shot: it targets the element most
// recently returned by Next and must be re-armed by another Next.
type Iterator[E any] struct {
	list     *List[E]
	cursor   int
	removeOK bool
}

// Iterator returns a new iterator over the elements of the list, front to
// back.
func (l *List[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{list: l}
}

// HasNext returns whether the iterator has elements left.
func (it *Iterator[E]) HasNext() bool {
	return it.cursor < it.list.size
}

// Next returns the current element and advances the cursor.
//
// It panics with ErrIteratorExhausted if the iterator has no elements left.
func (it *Iterator[E]) Next() E {
	if !it.HasNext() {
		panic(ErrIteratorExhausted)
	}
	e := it.list.data[it.cursor]
	it.cursor++
	it.removeOK = true
	return e
}

// Remove removes the element most recently returned by Next and returns it.
// The cursor backs up one slot so that iteration continues with the element
// that shifted into the vacated index.
//
// It panics with ErrIteratorState if called before the first Next or twice
// without an intervening Next.
func (it *Iterator[E]) Remove() E {
	if !it.removeOK {
		panic(ErrIteratorState)
	}
	it.removeOK = false
	it.cursor--
	return it.list.Remove(it.cursor)
}
