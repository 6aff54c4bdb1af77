package poslist

import "errors"

// Contract violation errors. They are used as panic values: every one of
// them indicates a programming error at the call site, not a transient
// condition, and a failed call leaves the list unmodified.
var (
	// ErrInvalidPosition indicates a position that is the zero Position,
	// belongs to a different list, or has already been removed.
	ErrInvalidPosition = errors.New("poslist: invalid position")

	// ErrIteratorExhausted indicates Next was called on an exhausted iterator.
	ErrIteratorExhausted = errors.New("poslist: iterator exhausted")

	// ErrIteratorState indicates Remove was called without an unconsumed Next.
	ErrIteratorState = errors.New("poslist: remove without next")
)
