package arraylist

import "errors"

// Contract violation errors. They are used as panic values: every one of
// them indicates a programming error at the call site, and a failed call
// leaves the list unmodified.
var (
	// ErrIndexOutOfRange indicates an index outside the valid range of
	// the operation.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")

	// ErrIteratorExhausted indicates Next was called on an exhausted iterator.
	ErrIteratorExhausted = errors.New("arraylist: iterator exhausted")

	// ErrIteratorState indicates Remove was called without an unconsumed Next.
	ErrIteratorState = errors.New("arraylist: remove without next")
)
