package treaps

import "errors"

// TreapError is an error type for the treaps module. Contract violations
// panic with a TreapError.
type TreapError string

func (e TreapError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is outside the range
// of a container.
const ErrIndexOutOfBounds = TreapError("treaps: index out of bounds")

// ErrIteratorRange is flagged whenever an iterator is moved before the first
// element or beyond the end of its container.
const ErrIteratorRange = TreapError("treaps: iterator out of range")

// ErrForeignIterator is flagged when iterators of different containers are
// compared or subtracted.
const ErrForeignIterator = TreapError("treaps: iterators belong to different containers")

// ErrSelfConcatenation is flagged when a sequence is concatenated to itself.
const ErrSelfConcatenation = TreapError("treaps: cannot concatenate a sequence to itself")

// ErrNoComparison is flagged when a map is created without a comparison function.
const ErrNoComparison = TreapError("treaps: map requires a comparison function")

// ErrSeqCompleted signals that a builder has already completed a sequence
// and it's illegal to further add elements.
const ErrSeqCompleted = TreapError("treaps: forbidden to add elements; sequence has been completed")

var (
	// ErrInvariant signals a broken structural invariant, as reported by Check.
	ErrInvariant = errors.New("treaps: invariant violated")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("treaps: illegal arguments")
)
